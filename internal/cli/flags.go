package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/spf13/pflag"
)

// divisionValue is a --division flag. It accepts the stored labels and the
// short forms people type ("2", "div2", "edu").
type divisionValue struct {
	d *domain.Division
}

var _ pflag.Value = divisionValue{}

func divisionVar(fs *pflag.FlagSet, d *domain.Division, usage string) {
	fs.Var(divisionValue{d: d}, "division", usage)
}

func (v divisionValue) String() string {
	if v.d == nil {
		return ""
	}
	return string(*v.d)
}

func (v divisionValue) Set(s string) error {
	d, err := parseDivision(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v divisionValue) Type() string { return "division" }

func parseDivision(s string) (domain.Division, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if domain.ValidDivisions[domain.Division(s)] {
		return domain.Division(s), nil
	}
	short := strings.NewReplacer(" ", "", ".", "").Replace(strings.ToLower(s))
	switch strings.TrimPrefix(short, "div") {
	case "1":
		return domain.DivisionOne, nil
	case "2":
		return domain.DivisionTwo, nil
	case "3":
		return domain.DivisionThree, nil
	case "4":
		return domain.DivisionFour, nil
	case "edu", "educational":
		return domain.DivisionEducational, nil
	}
	return "", fmt.Errorf("unknown division %q (want Div. 1-4 or Educational)", s)
}
