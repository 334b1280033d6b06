// Package signalfmt flattens the upstream signals payload (one bucket of
// category-keyed event arrays per entity) into a single display-ready list.
package signalfmt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"enrich-engine/internal/domain"
)

// Format maps every recognized category in the bucket to Signals and sorts
// them newest-first. Unknown categories are skipped. Returns nil, never an
// empty list, when nothing was produced.
func Format(bucket map[string]any) []domain.Signal {
	if bucket == nil {
		return nil
	}

	var out []domain.Signal
	// Fixed emission order keeps the sort stable for equal dates.
	for _, cat := range categories {
		arr, ok := bucket[string(cat.typ)].([]any)
		if !ok {
			continue
		}
		for _, v := range arr {
			event, ok := v.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, cat.build(event))
		}
	}
	if len(out) == 0 {
		return nil
	}

	sort.SliceStable(out, func(i, j int) bool {
		return parseDate(out[i].Date).After(parseDate(out[j].Date))
	})
	return out
}

var categories = []struct {
	typ   domain.SignalType
	build func(event map[string]any) domain.Signal
}{
	{domain.SignalCompanyChange, buildCompanyChange},
	{domain.SignalPromotion, buildPromotion},
	{domain.SignalNewJobsOpen, buildNewJobsOpen},
	{domain.SignalNewsEvent, buildNewsEvent},
	{domain.SignalHeadcountGrowth, buildHeadcountGrowth},
	{domain.SignalFunding, buildFunding},
	{domain.SignalGrowth, buildGrowth},
}

func buildCompanyChange(event map[string]any) domain.Signal {
	prev := str(event, "previousCompanyName")
	if prev == "" {
		prev = "previous company"
	}
	return domain.Signal{
		Type:        domain.SignalCompanyChange,
		Title:       "Changed Company",
		Description: fmt.Sprintf("Moved from %s to %s", prev, str(event, "currentCompanyName")),
		Date:        str(event, "signalDate"),
		Metadata: map[string]any{
			"currentCompany":  event["currentCompanyName"],
			"currentTitle":    event["currentTitle"],
			"currentDomain":   event["currentDomain"],
			"previousCompany": event["previousCompanyName"],
			"previousDomain":  event["previousDomain"],
			"departments":     event["currentDepartments"],
			"seniority":       event["currentSeniorityLabel"],
		},
	}
}

func buildPromotion(event map[string]any) domain.Signal {
	prev := str(event, "previousTitle")
	if prev == "" {
		prev = "previous role"
	}
	return domain.Signal{
		Type:        domain.SignalPromotion,
		Title:       "Got Promoted",
		Description: fmt.Sprintf("Promoted from %s to %s", prev, str(event, "currentTitle")),
		Date:        str(event, "signalDate"),
		Metadata: map[string]any{
			"currentTitle":  event["currentTitle"],
			"previousTitle": event["previousTitle"],
			"companyName":   event["companyName"],
		},
	}
}

func buildNewJobsOpen(event map[string]any) domain.Signal {
	count := str(event, "newValue")
	if count == "" {
		count = "Multiple"
	}
	return domain.Signal{
		Type:        domain.SignalNewJobsOpen,
		Title:       "New Jobs Posted",
		Description: fmt.Sprintf("%s new job openings (%s signal strength)", count, strength(event)),
		Date:        str(event, "signalDate"),
		Metadata:    event,
	}
}

func buildNewsEvent(event map[string]any) domain.Signal {
	title := str(event, "articleTitle")
	if title == "" {
		title = str(event, "eventType")
	}
	if title == "" {
		title = "News Event"
	}
	desc := str(event, "eventSummary")
	if desc == "" {
		desc = str(event, "articleSentence")
	}
	date := str(event, "articlePublishedDate")
	if date == "" {
		date = str(event, "signalDate")
	}
	return domain.Signal{
		Type:        domain.SignalNewsEvent,
		Title:       title,
		Description: desc,
		Date:        date,
		URL:         str(event, "articleUrl"),
		Metadata: map[string]any{
			"eventType":          event["eventType"],
			"eventCategory":      event["eventCategory"],
			"eventEffectiveDate": event["eventEffectiveDate"],
		},
	}
}

func buildHeadcountGrowth(event map[string]any) domain.Signal {
	return domain.Signal{
		Type:        domain.SignalHeadcountGrowth,
		Title:       "Headcount Growth",
		Description: fmt.Sprintf("Company headcount increased (%s signal strength)", strength(event)),
		Date:        str(event, "signalDate"),
		Metadata:    event,
	}
}

func buildFunding(event map[string]any) domain.Signal {
	desc := str(event, "description")
	if desc == "" {
		desc = "Raised " + str(event, "amount")
	}
	return domain.Signal{
		Type:        domain.SignalFunding,
		Title:       "Funding Event",
		Description: desc,
		Date:        str(event, "signalDate"),
		Metadata:    event,
	}
}

func buildGrowth(event map[string]any) domain.Signal {
	desc := str(event, "description")
	if desc == "" {
		desc = "Company showing growth signals"
	}
	return domain.Signal{
		Type:        domain.SignalGrowth,
		Title:       "Company Growth",
		Description: desc,
		Date:        str(event, "signalDate"),
		Metadata:    event,
	}
}

func strength(event map[string]any) string {
	if s := str(event, "score"); s != "" {
		return s
	}
	return "low"
}

func str(event map[string]any, key string) string {
	switch v := event[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// parseDate tolerates the upstream date variants; anything unparsable sorts
// as epoch 0, i.e. oldest.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Unix(0, 0).UTC()
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}
