package dataset

import (
	domainmodels "resume-flow-backend/models/domain"
)

func (s *Store) NotificationsByUser(userID string) []domainmodels.Notification {
	if userID == "" {
		return []domainmodels.Notification{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := []domainmodels.Notification{}
	for _, rec := range s.notifications {
		if rec.UserID == userID {
			list = append(list, rec)
		}
	}
	return list
}

func (s *Store) UnreadNotificationCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, rec := range s.notifications {
		if rec.UserID == userID && !rec.IsRead {
			count++
		}
	}
	return count
}

func (s *Store) AppendNotifications(recs ...domainmodels.Notification) error {
	if len(recs) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]domainmodels.Notification{}, s.notifications...), recs...)
	if err := s.persist(KeyNotifications, next); err != nil {
		return err
	}
	s.notifications = next
	return nil
}

func (s *Store) MarkNotificationRead(id, userID string) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]domainmodels.Notification{}, s.notifications...)
	for idx := range next {
		if next[idx].ID != id || next[idx].UserID != userID {
			continue
		}
		next[idx].IsRead = true
		if err = s.persist(KeyNotifications, next); err != nil {
			return true, err
		}
		s.notifications = next
		return true, nil
	}
	return false, nil
}

func (s *Store) MarkAllNotificationsRead(userID string) error {
	if userID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]domainmodels.Notification{}, s.notifications...)
	for idx := range next {
		if next[idx].UserID == userID {
			next[idx].IsRead = true
		}
	}
	if err := s.persist(KeyNotifications, next); err != nil {
		return err
	}
	s.notifications = next
	return nil
}

func (s *Store) DeleteNotification(id, userID string) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := []domainmodels.Notification{}
	for _, rec := range s.notifications {
		if rec.ID == id && rec.UserID == userID {
			found = true
			continue
		}
		next = append(next, rec)
	}
	if !found {
		return false, nil
	}
	if err = s.persist(KeyNotifications, next); err != nil {
		return true, err
	}
	s.notifications = next
	return true, nil
}
