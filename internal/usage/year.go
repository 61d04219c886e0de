package usage

import (
	"fmt"
	"sort"
	"strings"
)

// Year identifies one NHS SNOMED code usage release, named by its financial
// year.
type Year string

// Published usage releases.
const (
	Year2011 Year = "2011-12"
	Year2012 Year = "2012-13"
	Year2013 Year = "2013-14"
	Year2014 Year = "2014-15"
	Year2015 Year = "2015-16"
	Year2016 Year = "2016-17"
	Year2017 Year = "2017-18"
	Year2018 Year = "2018-19"
	Year2019 Year = "2019-20"
	Year2020 Year = "2020-21"
	Year2021 Year = "2021-22"
	Year2022 Year = "2022-23"
	Year2023 Year = "2023-24"
)

// yearPaths maps each release to its published download path. The hashed
// prefixes are assigned by the publisher and are not derivable from the year.
var yearPaths = map[Year]string{
	Year2011: "/53/C8F877/SNOMED_code_usage_2011-12.txt",
	Year2012: "/69/866A44/SNOMED_code_usage_2012-13.txt",
	Year2013: "/82/40F702/SNOMED_code_usage_2013-14.txt",
	Year2014: "/BB/47E566/SNOMED_code_usage_2014-15.txt",
	Year2015: "/8B/15EAA1/SNOMED_code_usage_2015-16.txt",
	Year2016: "/E2/79561E/SNOMED_code_usage_2016-17.txt",
	Year2017: "/9F/024949/SNOMED_code_usage_2017-18.txt",
	Year2018: "/13/F2956B/SNOMED_code_usage_2018-19.txt",
	Year2019: "/8F/882EB3/SNOMED_code_usage_2019-20.txt",
	Year2020: "/8A/09BBE6/SNOMED_code_usage_2020-21.txt",
	Year2021: "/71/6C02F5/SNOMED_code_usage_2021-22.txt",
	Year2022: "/09/E1218D/SNOMED_code_usage_2022-23.txt",
	Year2023: "/B8/7D8335/SNOMED_code_usage_2023-24.txt",
}

// InvalidYearError is returned when parsing a string that names no published
// release.
type InvalidYearError struct {
	Value string
}

func (e InvalidYearError) Error() string {
	return fmt.Sprintf("invalid usage year: %s", e.Value)
}

// ParseYear converts a financial-year string such as "2015-16" into a Year.
func ParseYear(s string) (Year, error) {
	y := Year(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := yearPaths[y]; !ok {
		return "", InvalidYearError{Value: s}
	}
	return y, nil
}

// Path returns the download path for the release, rooted at the publisher's
// file host.
func (y Year) Path() string { return yearPaths[y] }

func (y Year) String() string { return string(y) }

// Years returns every published release in chronological order.
func Years() []Year {
	out := make([]Year, 0, len(yearPaths))
	for y := range yearPaths {
		out = append(out, y)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
