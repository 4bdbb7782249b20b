package activity

import "github.com/heartmarshall/cms-blame/internal/domain"

// Classify tells a publish from an unpublish for a record that has been
// published at least once: a record that is currently published was last
// published, otherwise it was last unpublished.
func Classify(r domain.ChangeRecord) domain.Action {
	if r.PublishedAt != nil {
		return domain.ActionPublish
	}
	return domain.ActionUnpublish
}
