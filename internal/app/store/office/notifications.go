package office

import (
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/google/uuid"
)

// AddNotification appends n to the mailbox. Id, date and read flag are
// assigned here.
func (s *Store) AddNotification(n models.Notification) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifyLocked(n)
}

func (s *Store) notifyLocked(n models.Notification) models.Notification {
	n.ID = uuid.NewString()
	n.Date = s.now()
	n.IsRead = false
	if n.ScheduledFor != nil {
		at := *n.ScheduledFor
		n.ScheduledFor = &at
	}
	s.notifications = append(s.notifications, n)
	return n
}

// MarkNotificationRead sets the read flag. It reports whether the id was
// found.
func (s *Store) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return true
		}
	}
	return false
}

// NotificationsFor returns the notifications addressed to the actor id,
// to its role broadcast token, or to all students when the role is a
// student role.
func (s *Store) NotificationsFor(actorID string, role models.Role) []models.Notification {
	return s.filterNotifications(func(n models.Notification) bool {
		return n.AddressedTo(actorID, role)
	})
}

// Inbox is NotificationsFor plus anything sent to the actor's email
// address, which is how company registration outcomes are delivered.
func (s *Store) Inbox(a models.Actor) []models.Notification {
	email := normalize.Email(a.Email)
	return s.filterNotifications(func(n models.Notification) bool {
		return n.AddressedTo(a.ID, a.Role) || (email != "" && normalize.Email(n.To) == email)
	})
}

// UnreadCount is the number of unread notifications in the actor's inbox.
func (s *Store) UnreadCount(a models.Actor) int {
	n := 0
	for _, note := range s.Inbox(a) {
		if !note.IsRead {
			n++
		}
	}
	return n
}

// Notifications lists the whole mailbox.
func (s *Store) Notifications() []models.Notification {
	return s.filterNotifications(func(models.Notification) bool { return true })
}

func (s *Store) filterNotifications(keep func(models.Notification) bool) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, 0)
	for _, n := range s.notifications {
		if keep(n) {
			if n.ScheduledFor != nil {
				at := *n.ScheduledFor
				n.ScheduledFor = &at
			}
			out = append(out, n)
		}
	}
	return out
}
