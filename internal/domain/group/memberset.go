package group

// MemberSet is an insertion-order-preserving set of employee ids.
// Group membership is logically a set; the stored array is only its
// serialization, so all mutation goes through these operations.
type MemberSet []string

func NewMemberSet(ids ...string) MemberSet {
	return MemberSet(nil).Add(ids...)
}

func (s MemberSet) Contains(id string) bool {
	for _, member := range s {
		if member == id {
			return true
		}
	}
	return false
}

// Add returns the set extended with the given ids. Ids already present
// keep their position; duplicates within the input collapse to one entry.
func (s MemberSet) Add(ids ...string) MemberSet {
	result := s
	for _, id := range ids {
		if id == "" || result.Contains(id) {
			continue
		}
		result = append(result, id)
	}
	return result
}

// Remove returns the set without the given id. Removing an absent id is
// a no-op.
func (s MemberSet) Remove(id string) MemberSet {
	result := make(MemberSet, 0, len(s))
	for _, member := range s {
		if member != id {
			result = append(result, member)
		}
	}
	return result
}

func (s MemberSet) Len() int {
	return len(s)
}
