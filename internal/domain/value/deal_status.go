package value

import "fmt"

type DealStatus string

const (
	DealStatusDraft     DealStatus = "draft"
	DealStatusPublished DealStatus = "published"
)

func ParseDealStatus(s string) (DealStatus, error) {
	switch DealStatus(s) {
	case DealStatusDraft, DealStatusPublished:
		return DealStatus(s), nil
	}

	return "", fmt.Errorf("unknown deal status %q", s)
}

func (s DealStatus) String() string {
	return string(s)
}
