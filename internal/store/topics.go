package store

import (
	"errors"

	"github.com/nikbrunner/pin/internal/model"
	"github.com/nikbrunner/pin/internal/search"
)

// ErrTopicExists is returned when a topic slug is already taken.
var ErrTopicExists = errors.New("topic already exists")

// Topics returns every known topic.
func (s *Store) Topics() []model.Topic {
	return s.topics
}

// TopicBySlug finds a topic by slug.
func (s *Store) TopicBySlug(slug string) (model.Topic, error) {
	for _, t := range s.topics {
		if t.Slug == slug {
			return t, nil
		}
	}
	return model.Topic{}, ErrNotFound
}

// AddTopic creates a topic. Slugs must stay unique across the store.
func (s *Store) AddTopic(name string) (model.Topic, error) {
	topic := model.NewTopic(name)
	if topic.Slug == "" {
		return model.Topic{}, errors.New("topic name produces an empty slug")
	}
	for _, t := range s.topics {
		if t.Slug == topic.Slug {
			return model.Topic{}, ErrTopicExists
		}
	}

	s.topics = append(s.topics, topic)
	s.persistLibrary()
	return topic, nil
}

// RenameTopic changes a topic's name, deriving a new slug, and rewrites
// the slug on every record referencing the old one.
func (s *Store) RenameTopic(slug, newName string) (model.Topic, error) {
	newSlug := model.Slugify(newName)
	if newSlug == "" {
		return model.Topic{}, errors.New("topic name produces an empty slug")
	}

	idx := -1
	for i, t := range s.topics {
		if t.Slug == slug {
			idx = i
			continue
		}
		if t.Slug == newSlug {
			return model.Topic{}, ErrTopicExists
		}
	}
	if idx == -1 {
		return model.Topic{}, ErrNotFound
	}

	s.topics[idx].Name = newName
	s.topics[idx].Slug = newSlug

	if newSlug != slug {
		for i := range s.records {
			r := &s.records[i]
			changed := false
			for j, t := range r.Topics {
				if t == slug {
					r.Topics[j] = newSlug
					changed = true
				}
			}
			if changed {
				r.SearchTokens = search.BuildSearchTokens(*r)
			}
		}
	}

	s.persistLibrary()
	return s.topics[idx], nil
}

// RemoveTopic deletes a topic and strips its slug from every record.
// Removing an unknown slug is a no-op.
func (s *Store) RemoveTopic(slug string) {
	idx := -1
	for i, t := range s.topics {
		if t.Slug == slug {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	s.topics = append(s.topics[:idx], s.topics[idx+1:]...)

	for i := range s.records {
		r := &s.records[i]
		kept := r.Topics[:0]
		changed := false
		for _, t := range r.Topics {
			if t == slug {
				changed = true
				continue
			}
			kept = append(kept, t)
		}
		if changed {
			r.Topics = kept
			r.SearchTokens = search.BuildSearchTokens(*r)
		}
	}

	s.persistLibrary()
}
