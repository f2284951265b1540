package version

// Ordering is the result of comparing two records.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
	// Incomparable means the numeric tuples match but the qualifiers differ.
	Incomparable
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Incomparable:
		return "incomparable"
	default:
		return "unknown"
	}
}

// Compare orders a against b by (major, minor, patch).
// The qualifier only decides between Equal and Incomparable.
func Compare(a, b *Record) Ordering {
	if c := compareInt(a.Major, b.Major); c != Equal {
		return c
	}
	if c := compareInt(a.Minor, b.Minor); c != Equal {
		return c
	}
	if c := compareInt(a.Patch, b.Patch); c != Equal {
		return c
	}
	if a.Qualifier != b.Qualifier {
		return Incomparable
	}
	return Equal
}

// Latest returns the greatest record, or nil for an empty slice.
// A later record replaces the current pick only when it is strictly
// Greater; ties and incomparable pairs keep the first one seen.
func Latest(records []*Record) *Record {
	var best *Record
	for _, r := range records {
		if r == nil {
			continue
		}
		if best == nil || Compare(r, best) == Greater {
			best = r
		}
	}
	return best
}

func compareInt(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
