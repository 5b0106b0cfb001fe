package knowledge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Section headers of the knowledge file format.
const (
	headerKnowledge = "/knowledge"
	sectionTiers    = "addtemporal"
	sectionForbid   = "forbiddirect"
	sectionRequire  = "requiredirect"
)

// Parse reads the plain-text knowledge format:
//
//	/knowledge
//	addtemporal
//	1 X1 X2
//	2* X3
//	forbiddirect
//	X3 X1
//	requiredirect
//	X1 X2
//
// Tier lines start with the tier number; a trailing '*' forbids edges
// within the tier. Edge lines name a cause then an effect. Blank lines and
// lines starting with '#' or '//' are ignored; the /knowledge header is
// optional. Names are not checked here; see Validate and Compile.
//
// Errors: ErrMalformed wrapped with the line number.
func Parse(r io.Reader) (*Knowledge, error) {
	k := New()
	sc := bufio.NewScanner(r)
	var (
		section string
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case headerKnowledge:
			if section != "" || len(fields) > 1 {
				return nil, fmt.Errorf("knowledge: line %d: unexpected header: %w", lineNo, ErrMalformed)
			}
			continue
		case sectionTiers, sectionForbid, sectionRequire:
			if len(fields) > 1 {
				return nil, fmt.Errorf("knowledge: line %d: text after %q: %w", lineNo, fields[0], ErrMalformed)
			}
			section = strings.ToLower(fields[0])
			continue
		}

		var err error
		switch section {
		case sectionTiers:
			err = parseTier(k, fields)
		case sectionForbid, sectionRequire:
			if len(fields) != 2 {
				err = fmt.Errorf("want 2 names, got %d", len(fields))
				break
			}
			if fields[0] == fields[1] {
				err = fmt.Errorf("edge from %q to itself", fields[0])
				break
			}
			if section == sectionForbid {
				k.Forbid(fields[0], fields[1])
			} else {
				k.Require(fields[0], fields[1])
			}
		default:
			err = fmt.Errorf("%q outside a section", line)
		}
		if err != nil {
			return nil, fmt.Errorf("knowledge: line %d: %v: %w", lineNo, err, ErrMalformed)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return k, nil
}

// parseTier handles "N[*] name...".
func parseTier(k *Knowledge, fields []string) error {
	num := fields[0]
	within := strings.HasSuffix(num, "*")
	num = strings.TrimSuffix(num, "*")
	tier, err := strconv.Atoi(num)
	if err != nil || tier < 0 {
		return fmt.Errorf("bad tier %q", fields[0])
	}
	if within {
		k.ForbidWithinTier(tier)
	}
	for _, name := range fields[1:] {
		if prev, ok := k.Tier(name); ok && prev != tier {
			return fmt.Errorf("%q in tiers %d and %d", name, prev, tier)
		}
		k.SetTier(name, tier)
	}

	return nil
}

// ParseFile opens path and calls Parse.
func ParseFile(path string) (*Knowledge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}
