package meter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/automidi/model"
)

var names = []string{
	"2/4", "3/4", "4/4", "5/4", "6/4", "7/4", "9/8", "12/8", "1/4", "8/4",
	"10/4", "11/4", "13/4", "15/4", "6/8", "3/8", "5/8", "7/8", "10/8", "11/8",
}

// Names lists the offered time signatures.
func Names() []string {
	return append([]string(nil), names...)
}

// Parse splits "N/D" into numerator and denominator. Only the offered
// signatures are accepted.
func Parse(sig string) (num uint8, denom uint8, err error) {
	found := false
	for _, n := range names {
		if n == sig {
			found = true
			break
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("%q: %w", sig, model.ErrInvalidTimeSignature)
	}
	parts := strings.SplitN(sig, "/", 2)
	n, _ := strconv.Atoi(parts[0])
	d, _ := strconv.Atoi(parts[1])
	return uint8(n), uint8(d), nil
}
