package fastiron

import (
	"regexp"
	"strconv"

	"github.com/carlosrabelo/fastiron/domain/entities"
)

// counterPattern binds the capture groups of one report line to counter names
type counterPattern struct {
	re    *regexp.Regexp
	names []string // one per group, "" to ignore
}

var counterPatterns = []counterPattern{
	{re: regexp.MustCompile(`(\d+) packets input, (\d+) bytes`), names: []string{"", entities.CounterRxOctets}},
	{re: regexp.MustCompile(`Received (\d+) broadcasts, (\d+) multicasts, (\d+) unicasts`), names: []string{entities.CounterRxBroadcastPackets, entities.CounterRxMulticastPackets, entities.CounterRxUnicastPackets}},
	{re: regexp.MustCompile(`(\d+) input errors`), names: []string{entities.CounterRxErrors}},
	{re: regexp.MustCompile(`(\d+) in(?:put)? discards`), names: []string{entities.CounterRxDiscards}},
	{re: regexp.MustCompile(`(\d+) packets output, (\d+) bytes`), names: []string{"", entities.CounterTxOctets}},
	{re: regexp.MustCompile(`Transmitted (\d+) broadcasts, (\d+) multicasts, (\d+) unicasts`), names: []string{entities.CounterTxBroadcastPackets, entities.CounterTxMulticastPackets, entities.CounterTxUnicastPackets}},
	{re: regexp.MustCompile(`(\d+) output errors`), names: []string{entities.CounterTxErrors}},
	{re: regexp.MustCompile(`(\d+) out(?:put)? discards`), names: []string{entities.CounterTxDiscards}},
}

// parseInterfaceCounters collects the traffic counters printed in a
// per-interface report. Counters missing from the report are left out.
func parseInterfaceCounters(raw string) entities.InterfaceCounters {
	counters := make(entities.InterfaceCounters)
	for _, pattern := range counterPatterns {
		match := pattern.re.FindStringSubmatch(raw)
		if match == nil {
			continue
		}
		for i, name := range pattern.names {
			if name == "" {
				continue
			}
			value, err := strconv.ParseUint(match[i+1], 10, 64)
			if err != nil {
				continue
			}
			counters[name] = value
		}
	}
	return counters
}
