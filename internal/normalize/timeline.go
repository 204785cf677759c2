package normalize

import (
	"regexp"
	"strings"

	"nexuslearn/internal/model"
)

const monthsPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

// Date token patterns tried against the start of a block's first line,
// in this order.
var (
	bracketEventRE = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*:?\s*(.*)$`)
	dateTokenREs   = []*regexp.Regexp{
		regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4})`),
		regexp.MustCompile(`(?i)^(` + monthsPattern + `\.?\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(?i)^(\d{1,2}\s+` + monthsPattern + `\.?\s+\d{4})`),
		regexp.MustCompile(`^(\d{4})\b`),
	}
	dateSeparatorRE  = regexp.MustCompile(`^\s*[:\-–—]\s*`)
	headingLineRE    = regexp.MustCompile(`^\s*#+\s*(.+)$`)
	bulletOrNumberRE = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+(.+)$`)
)

// parseTimelineText turns dated text blocks into a timeline model.
// Source order is kept as-is; this layer never re-sorts events.
func parseTimelineText(text string) *model.TimelineModel {
	m := &model.TimelineModel{Events: []model.TimelineEvent{}}

	for _, block := range splitBlankBlocks(text) {
		if ev, ok := parseTimelineBlock(block); ok {
			m.Events = append(m.Events, ev)
		}
	}

	if len(m.Events) == 0 {
		m.Events = parseHeadingTimeline(text)
	}
	if len(m.Events) == 0 {
		return model.DefaultTimeline()
	}
	return m
}

func parseTimelineBlock(block string) (model.TimelineEvent, bool) {
	lines := strings.Split(block, "\n")
	first := strings.TrimSpace(lines[0])
	if first == "" {
		return model.TimelineEvent{}, false
	}
	// Bare headings are date context for the fallback grammar, not
	// events in their own right.
	if strings.HasPrefix(first, "#") {
		return model.TimelineEvent{}, false
	}

	desc := strings.TrimSpace(strings.Join(lines[1:], "\n"))

	if m := bracketEventRE.FindStringSubmatch(first); m != nil {
		return model.TimelineEvent{
			Date:        strings.TrimSpace(m[1]),
			Title:       strings.TrimSpace(m[2]),
			Description: desc,
		}, true
	}

	for _, re := range dateTokenREs {
		if m := re.FindStringSubmatch(first); m != nil {
			rest := first[len(m[0]):]
			rest = dateSeparatorRE.ReplaceAllString(rest, "")
			return model.TimelineEvent{
				Date:        strings.TrimSpace(m[1]),
				Title:       strings.TrimSpace(rest),
				Description: desc,
			}, true
		}
	}

	return model.TimelineEvent{
		Date:        "Unknown",
		Title:       first,
		Description: desc,
	}, true
}

// parseHeadingTimeline reads the heading+bullet fallback grammar:
// lines starting with # set the current date, bullet lines under a
// heading become events at that date.
func parseHeadingTimeline(text string) []model.TimelineEvent {
	var events []model.TimelineEvent
	currentDate := "Unknown"

	for _, line := range strings.Split(text, "\n") {
		if m := headingLineRE.FindStringSubmatch(line); m != nil {
			currentDate = strings.TrimSpace(m[1])
			continue
		}
		if m := bulletOrNumberRE.FindStringSubmatch(line); m != nil {
			events = append(events, model.TimelineEvent{
				Date:  currentDate,
				Title: strings.TrimSpace(m[1]),
			})
		}
	}
	return events
}
