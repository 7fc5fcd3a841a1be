package dcterms

import (
	"fmt"
	"strings"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// Frequency is a term of the DCMI frequency vocabulary, held by its local
// name. It is written to graphs as the full IRI.
type Frequency string

// Frequencies.
const (
	Annual           Frequency = "annual"
	Biennial         Frequency = "biennial"
	Bimonthly        Frequency = "bimonthly"
	Biweekly         Frequency = "biweekly"
	Continuous       Frequency = "continuous"
	Daily            Frequency = "daily"
	Irregular        Frequency = "irregular"
	Monthly          Frequency = "monthly"
	Quarterly        Frequency = "quarterly"
	Semiannual       Frequency = "semiannual"
	Semimonthly      Frequency = "semimonthly"
	Semiweekly       Frequency = "semiweekly"
	ThreeTimesAMonth Frequency = "threeTimesAMonth"
	ThreeTimesAWeek  Frequency = "threeTimesAWeek"
	Triennial        Frequency = "triennial"
	Weekly           Frequency = "weekly"
)

var frequencies = []Frequency{
	Annual, Biennial, Bimonthly, Biweekly, Continuous, Daily, Irregular, Monthly,
	Quarterly, Semiannual, Semimonthly, Semiweekly, ThreeTimesAMonth, ThreeTimesAWeek,
	Triennial, Weekly,
}

// Frequencies lists every term of the vocabulary.
func Frequencies() []Frequency {
	return append([]Frequency(nil), frequencies...)
}

// IRI returns the term's IRI.
func (f Frequency) IRI() rdf.IRI {
	return rdf.IRI{Value: FreqNamespace + string(f)}
}

// ParseFrequency accepts a local name or a full frequency IRI.
func ParseFrequency(s string) (Frequency, error) {
	name := strings.TrimPrefix(strings.TrimSpace(s), FreqNamespace)
	for _, f := range frequencies {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("dcterms: unknown frequency %q", s)
}

func (f Frequency) MarshalText() ([]byte, error) {
	return []byte(f.IRI().Value), nil
}

func (f *Frequency) UnmarshalText(text []byte) error {
	v, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// frequencyTerm writes frequencies as named nodes; the text form alone would
// become a plain literal.
func frequencyTerm(v any) (any, error) {
	f, ok := v.(Frequency)
	if !ok {
		return v, nil
	}
	if f == "" {
		return nil, nil
	}
	if _, err := ParseFrequency(string(f)); err != nil {
		return nil, err
	}
	return f.IRI(), nil
}
