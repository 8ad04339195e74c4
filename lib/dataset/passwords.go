package dataset

// PasswordHash returns the stored password hash for a username.
func (s *Store) PasswordHash(username string) (hash string, found bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, found = s.passwords[username]
	return hash, found
}

func (s *Store) SetPasswordHash(username, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make(map[string]string, len(s.passwords)+1)
	for key, value := range s.passwords {
		next[key] = value
	}
	next[username] = hash
	if err := s.persist(KeyPasswords, next); err != nil {
		return err
	}
	s.passwords = next
	return nil
}
