package submission

import "fmt"

// UpvotePercentage formats the share of human upvotes to two decimals. The
// second return value is false when no human voted at all; the suffix is
// omitted entirely then rather than rendering a division by zero.
func UpvotePercentage(upvotes, downvotes int) (string, bool) {
	human := func(count int) int {
		if count <= 1 {
			return 0
		}
		return count - 1
	}

	up, down := human(upvotes), human(downvotes)
	if up+down == 0 {
		return "", false
	}
	return fmt.Sprintf("%.2f", float64(up)*100/float64(up+down)), true
}

// percentageSuffix renders the parenthesized status suffix, or "" when no
// votes were cast.
func percentageSuffix(upvotes, downvotes int) string {
	pct, ok := UpvotePercentage(upvotes, downvotes)
	if !ok {
		return ""
	}
	return fmt.Sprintf(" (%s%% upvoted)", pct)
}
