package words

import "regexp"

// A sentence is some text, not containing terminators, followed by
// terminators.
var sentencePattern = regexp.MustCompile(`[^!.?]+[!.?]+`)

// CountSentences returns the number of sentences in text. Trailing text without
// a terminating '.', '!' or '?' is not counted.
func CountSentences(text string) int {
	return len(sentencePattern.FindAllStringIndex(text, -1))
}
