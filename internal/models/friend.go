package models

import (
	"github.com/google/uuid"
)

// FriendLink - связь двух пользователей с множеством зон, которыми они взаимно делятся.
// Читается из внешнего хранилища; движок присутствия этими данными не владеет.
type FriendLink struct {
	UserID      string         `json:"user_id"`
	FriendID    string         `json:"friend_id"`
	SharedZones []uuid.UUID    `json:"shared_zones"`
	Presence    *PresenceState `json:"presence,omitempty"`
}

// SharesZone сообщает, входит ли зона в множество общих зон связи
func (f *FriendLink) SharesZone(zoneID uuid.UUID) bool {
	for _, id := range f.SharedZones {
		if id == zoneID {
			return true
		}
	}
	return false
}
