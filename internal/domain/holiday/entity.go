package holiday

import "time"

type Type string

const (
	TypePublic    Type = "public"
	TypeNational  Type = "national"
	TypeReligious Type = "religious"
	TypeCompany   Type = "company"
)

type Holiday struct {
	Date   time.Time
	Type   Type
	IsPaid bool
}

// Set indexes holidays by calendar day for rate-tier lookup.
type Set map[string]Holiday

func NewSet(holidays []Holiday) Set {
	s := make(Set, len(holidays))
	for _, h := range holidays {
		s[h.Date.Format("2006-01-02")] = h
	}
	return s
}

func (s Set) Contains(date time.Time) bool {
	_, ok := s[date.Format("2006-01-02")]
	return ok
}
