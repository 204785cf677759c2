package normalize

import (
	"log"
	"regexp"
	"strings"

	"nexuslearn/internal/model"
)

// Line classification patterns, tried in this order; first match wins.
var (
	questionLineRE = regexp.MustCompile(`(?i)^[\s*_#]*(?:question|q)?[\s*_]*\d+[\s*_]*[:.)\-][\s*_]*(.+)$`)
	optionLineRE   = regexp.MustCompile(`(?i)^\s*(?:\(([a-d])\)|([a-d])[).:])\s*(.+)$`)
	answerLineRE   = regexp.MustCompile(`(?i)^[\s*_]*(?:correct\s+answer|answer|correct)[\s*_]*[:\-][\s*_]*(.*)$`)
	explainLineRE  = regexp.MustCompile(`(?i)^[\s*_]*explanation[\s*_]*:\s*(.*)$`)
	answerLetterRE = regexp.MustCompile(`(?i)\b([a-d])\b`)
	numberedLineRE = regexp.MustCompile(`^\s*\d+\.`)
)

// trimEmphasis drops surrounding markdown emphasis and heading marks
func trimEmphasis(s string) string {
	return strings.Trim(strings.TrimSpace(s), "*_# \t")
}

// parseQuizText turns loosely formatted quiz text into a quiz model.
// Blocks are split on numbered question lines first, falling back to
// blank-line separation when numbering yields a single block. A block
// is kept only when it has a question and at least two options.
func parseQuizText(text string) *model.QuizModel {
	blocks := splitNumberedBlocks(text)
	if len(blocks) <= 1 {
		blocks = splitBlankBlocks(text)
	}

	m := &model.QuizModel{Questions: []model.QuizQuestion{}}
	for i, block := range blocks {
		if q, ok := parseQuizBlock(block, i); ok {
			m.Questions = append(m.Questions, q)
		}
	}
	if len(m.Questions) == 0 {
		return model.DefaultQuiz()
	}
	return m
}

func parseQuizBlock(block string, blockIndex int) (model.QuizQuestion, bool) {
	q := model.QuizQuestion{Options: []string{}}
	answered := false

	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := questionLineRE.FindStringSubmatch(line); m != nil && q.Question == "" {
			q.Question = trimEmphasis(m[1])
			continue
		}
		if m := optionLineRE.FindStringSubmatch(line); m != nil {
			// Source letters are discarded; option order alone decides
			// the rendered letter.
			q.Options = append(q.Options, strings.TrimSpace(m[3]))
			continue
		}
		if m := answerLineRE.FindStringSubmatch(line); m != nil {
			if lm := answerLetterRE.FindStringSubmatch(m[1]); lm != nil {
				letter := strings.ToUpper(lm[1])[0]
				q.CorrectAnswer = int(letter - 'A')
				answered = true
			}
			continue
		}
		if m := explainLineRE.FindStringSubmatch(line); m != nil {
			q.Explanation = strings.TrimSpace(m[1])
			continue
		}
		if q.Question == "" {
			q.Question = trimEmphasis(line)
		}
	}

	if q.Question == "" || len(q.Options) < 2 {
		return model.QuizQuestion{}, false
	}
	if !answered {
		// Known-ambiguous input, not a parse failure: keep the question
		// and point at the first option.
		log.Printf("[normalize] quiz block %d has no resolvable answer letter, defaulting to option 0", blockIndex)
		q.CorrectAnswer = 0
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		log.Printf("[normalize] quiz block %d answer index %d out of range, defaulting to option 0", blockIndex, q.CorrectAnswer)
		q.CorrectAnswer = 0
	}
	return q, true
}

// splitNumberedBlocks starts a new block at every line that begins
// with an integer followed by a dot.
func splitNumberedBlocks(text string) []string {
	var blocks []string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		if numberedLineRE.MatchString(line) && len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

// splitBlankBlocks separates blocks on runs of blank lines.
func splitBlankBlocks(text string) []string {
	var blocks []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}
