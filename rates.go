package brique

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// reference rates, fetched from the ECB data portal. Useful to sanity
// check the nominal rate of a loan against the market, never used in
// the accrual itself.

const ecbDataURL = "https://data-api.ecb.europa.eu/service/data/FM/M.U2.EUR.RT.MM.EURIBOR3MD_.HSTA?format=jsondata&lastNObservations=1"

// Euribor3M returns the latest 3-month Euribor monthly average, in
// percent, as published by the ECB data portal.
func Euribor3M() (Percent, error) {
	return fetchRate(ecbDataURL, "3-month Euribor")
}

func fetchRate(addr, name string) (Percent, error) {
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return 0, fmt.Errorf("error in wget %q: %w", name, err)
	}
	// the sdmx-json layout keys series and observations by position;
	// wildcards keep us independent of the actual key values.
	path := "$.dataSets[0].series.*.observations.*[0]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", name, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer, keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: %q %s %v", name, path, "not a float", jval)
	}
	return Percent(val), nil
}
