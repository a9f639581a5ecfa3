package submission

import "github.com/Faithful-Resource-Pack/Submission-Bot/model"

// Accepted decides whether a submission passes its current vote stage from
// the raw reaction counts (bot baseline included). A submission passes when
// it has strictly more upvotes than downvotes, or when nobody voted at all:
// both counters still at the baseline means nobody cared enough to object.
// Ties above the baseline do not pass.
func Accepted(upvotes, downvotes int) bool {
	if upvotes > downvotes {
		return true
	}
	return upvotes == 1 && downvotes == 1
}

// Tally partitions submissions into accepted and rejected sets. Everything
// not accepted is rejected, so the two sets always cover the input.
func Tally(subs []*model.Submission) (accepted, rejected []*model.Submission) {
	for _, sub := range subs {
		if Accepted(sub.Upvotes, sub.Downvotes) {
			accepted = append(accepted, sub)
		} else {
			rejected = append(rejected, sub)
		}
	}
	return accepted, rejected
}
