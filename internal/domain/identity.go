package domain

import "time"

// IdentityKind вид идентичности бронирования
type IdentityKind int

const (
	// IdentityAnchor хранимое бронирование
	IdentityAnchor IdentityKind = iota
	// IdentityVirtualOccurrence вычисленный экземпляр повторения
	IdentityVirtualOccurrence
)

// Identity однозначно определяет бронирование в рамках дня
// Для виртуального экземпляра это пара (id исходного бронирования, дата)
type Identity struct {
	Kind     IdentityKind
	AnchorID string
	Date     time.Time
}

func AnchorIdentity(id string) Identity {
	return Identity{Kind: IdentityAnchor, AnchorID: id}
}

func VirtualOccurrenceIdentity(anchorID string, date time.Time) Identity {
	return Identity{
		Kind:     IdentityVirtualOccurrence,
		AnchorID: anchorID,
		Date:     DateOnly(date),
	}
}

// Key строковый ключ: "<id>" или "<id>-YYYY-MM-DD"
func (i Identity) Key() string {
	if i.Kind == IdentityVirtualOccurrence {
		return i.AnchorID + "-" + i.Date.Format(DateFormat)
	}
	return i.AnchorID
}

func (i Identity) String() string {
	return i.Key()
}
