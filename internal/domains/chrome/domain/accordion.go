package domain

// Accordions maps an accordion group to its single open item. Opening an
// item closes whatever else was open in the same group.
type Accordions map[string]string

// Toggle opens the item, or closes it when it is already the open one.
func (a Accordions) Toggle(group, item string) Accordions {
	next := make(Accordions, len(a)+1)
	for g, open := range a {
		next[g] = open
	}
	if next[group] == item {
		delete(next, group)
	} else {
		next[group] = item
	}
	return next
}

// Open returns the group's open item, empty when the group is collapsed.
func (a Accordions) Open(group string) string { return a[group] }
