package tutorial

import (
	"fmt"
	"strings"
)

// Topic is one page of the tutor.
type Topic int

const (
	TopicSimilarity Topic = iota
	TopicCongruence
	TopicGeometryQuiz
	TopicDistribution
	TopicDistributionQuiz
	TopicRadicals
)

var topicInfo = []struct {
	slug  string
	title string
	desc  string
}{
	TopicSimilarity:       {"similarity", "Triangle Similarity", "Same angles, sides scaled by a common factor."},
	TopicCongruence:       {"congruence", "Triangle Congruence", "Build two triangles from side-angle-side and compare."},
	TopicGeometryQuiz:     {"geometry-quiz", "Geometry Quiz", "Seven questions on similar and congruent triangles."},
	TopicDistribution:     {"normal", "Normal Distribution", "Move the mean and spread of a bell curve."},
	TopicDistributionQuiz: {"normal-quiz", "Distribution Quiz", "Six questions on the normal distribution."},
	TopicRadicals:         {"radicals", "Simplify Radicals", "Read the note, try radicands, save the note to disk."},
}

// Topics lists every topic in menu order.
func Topics() []Topic {
	out := make([]Topic, len(topicInfo))
	for i := range topicInfo {
		out[i] = Topic(i)
	}
	return out
}

func (t Topic) valid() bool {
	return t >= 0 && int(t) < len(topicInfo)
}

// String returns the display title.
func (t Topic) String() string {
	if !t.valid() {
		return fmt.Sprintf("Topic(%d)", int(t))
	}
	return topicInfo[t].title
}

// Slug returns the command-line name.
func (t Topic) Slug() string {
	if !t.valid() {
		return ""
	}
	return topicInfo[t].slug
}

// Description returns a one-line summary for menus.
func (t Topic) Description() string {
	if !t.valid() {
		return ""
	}
	return topicInfo[t].desc
}

// BankID returns the quiz bank behind a quiz topic.
func (t Topic) BankID() (string, bool) {
	switch t {
	case TopicGeometryQuiz:
		return "geometry", true
	case TopicDistributionQuiz:
		return "normal", true
	}
	return "", false
}

// ParseTopic resolves a slug. "distribution" is accepted for "normal".
func ParseTopic(s string) (Topic, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "distribution" {
		s = "normal"
	}
	for i, info := range topicInfo {
		if info.slug == s {
			return Topic(i), nil
		}
	}
	return 0, fmt.Errorf("unknown topic %q", s)
}
