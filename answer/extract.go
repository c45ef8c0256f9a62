// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package answer

import (
	"regexp"
	"strings"
)

// sectionTopics are the recognizable section headings of structured
// contexts. They double as stop headings: a heading for one topic ends
// the span of the previous one.
var sectionTopics = []string{
	"disadvantages",
	"advantages",
	"when to use",
	"example",
	"conclusion",
	"summary",
}

var numberedItemStart = regexp.MustCompile(`(?m)^\s*\d+\.\s`)

// ExtractNumberedList deterministically extracts numbered-list items
// relevant to the question from the context. When the context contains a
// heading matching the question's topic, extraction is restricted to the
// span between that heading and the next stop heading; otherwise the
// whole context is scanned. Items are cleaned and joined with a blank
// line. Returns "" and false when no items are found.
func ExtractNumberedList(context, question string) (string, bool) {
	span := sectionSpan(context, topicOf(question))

	items := numberedItems(span)
	if len(items) == 0 {
		return "", false
	}
	return strings.Join(items, "\n\n"), true
}

// topicOf returns the section topic named by the question, or "".
// "disadvantages" is checked before "advantages" since the latter is a
// substring of the former.
func topicOf(question string) string {
	q := strings.ToLower(question)
	for _, topic := range sectionTopics {
		if strings.Contains(q, topic) {
			return topic
		}
	}
	return ""
}

// sectionSpan returns the lines between the topic's heading line and the
// next heading line. A missing topic or heading yields the full context
// rather than aborting.
func sectionSpan(context, topic string) string {
	if topic == "" {
		return context
	}

	lines := strings.Split(context, "\n")

	start := -1
	for i, line := range lines {
		if isHeadingFor(line, topic) {
			start = i
			break
		}
	}
	if start == -1 {
		return context
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if isHeading(lines[i]) && !isHeadingFor(lines[i], topic) {
			end = i
			break
		}
	}

	return strings.Join(lines[start:end], "\n")
}

// isHeadingFor reports whether the line is a section heading for the
// given topic. Numbered items never count as headings, so an item like
// "3. Example of use" does not terminate a span.
func isHeadingFor(line, topic string) bool {
	if numberedItemStart.MatchString(line) {
		return false
	}
	l := strings.ToLower(line)
	if !strings.Contains(l, topic) {
		return false
	}
	// "advantages" inside "disadvantages" is a different section
	if topic == "advantages" && strings.Contains(l, "disadvantages") {
		return false
	}
	return true
}

func isHeading(line string) bool {
	for _, topic := range sectionTopics {
		if isHeadingFor(line, topic) {
			return true
		}
	}
	return false
}

// numberedItems extracts "<digits>. <text>" items from the span. Each
// item runs to the next numbered item or the end of the span; wrapped
// lines are collapsed to single-space separated text.
func numberedItems(span string) []string {
	starts := numberedItemStart.FindAllStringIndex(span, -1)
	if len(starts) == 0 {
		return nil
	}

	items := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(span)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		item := strings.TrimSpace(span[loc[0]:end])
		item = strings.Join(strings.Fields(item), " ")
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
