package dao

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

// Store is the process-local entity store. It holds the five ordered
// collections of a session and is the only place ids are issued.
// Readers get deep copies; writers are serialised by mu.
type Store struct {
	mu sync.RWMutex

	accounts  []entity.Account
	templates []entity.CategoryTemplate
	ideas     []entity.PostIdea
	posts     []entity.ScheduledPost
	insights  []entity.EngagementInsight

	ids    map[Collection]map[string]struct{}
	issued map[string]struct{}
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		ids: map[Collection]map[string]struct{}{
			CollectionAccounts:  {},
			CollectionTemplates: {},
			CollectionIdeas:     {},
			CollectionPosts:     {},
			CollectionInsights:  {},
		},
		issued: make(map[string]struct{}),
	}
}

// NewID returns a fresh id of the form <prefix>_<uuid>.
// Issued ids are remembered so a token is never handed out twice.
func (s *Store) NewID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		id := prefix + "_" + uuid.NewString()
		if _, taken := s.issued[id]; taken {
			continue
		}
		s.issued[id] = struct{}{}
		return id
	}
}

// has reports whether id exists in collection c. Caller holds mu.
func (s *Store) has(c Collection, id string) bool {
	_, ok := s.ids[c][id]
	return ok
}

// claim registers id in collection c. Caller holds the write lock.
func (s *Store) claim(c Collection, id string) error {
	if s.has(c, id) {
		return fmt.Errorf("%w: %s %q", entity.ErrDuplicateID, c, id)
	}
	s.ids[c][id] = struct{}{}
	s.issued[id] = struct{}{}
	return nil
}

// AppendAccount adds a seeded account
func (s *Store) AppendAccount(acc entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.claim(CollectionAccounts, acc.ID); err != nil {
		return err
	}
	s.accounts = append(s.accounts, acc)
	return nil
}

// AppendTemplate adds a seeded category template
func (s *Store) AppendTemplate(tmpl entity.CategoryTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.claim(CollectionTemplates, tmpl.ID); err != nil {
		return err
	}
	s.templates = append(s.templates, tmpl.Clone())
	return nil
}

// AppendInsight adds a seeded engagement insight
func (s *Store) AppendInsight(ins entity.EngagementInsight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.claim(CollectionInsights, ins.ID); err != nil {
		return err
	}
	s.insights = append(s.insights, ins)
	return nil
}

// AppendIdea adds a generated idea
func (s *Store) AppendIdea(idea entity.PostIdea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.claim(CollectionIdeas, idea.ID); err != nil {
		return err
	}
	s.ideas = append(s.ideas, idea.Clone())
	return nil
}

// AppendPost adds a scheduled post
func (s *Store) AppendPost(post entity.ScheduledPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.claim(CollectionPosts, post.ID); err != nil {
		return err
	}
	s.posts = append(s.posts, post.Clone())
	return nil
}

// AppendBatch appends ideas and posts atomically
func (s *Store) AppendBatch(ideas []entity.PostIdea, posts []entity.ScheduledPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate every id, including collisions inside the batch, before writing
	seenIdeas := make(map[string]struct{}, len(ideas))
	for _, idea := range ideas {
		if _, dup := seenIdeas[idea.ID]; dup || s.has(CollectionIdeas, idea.ID) {
			return fmt.Errorf("%w: %s %q", entity.ErrDuplicateID, CollectionIdeas, idea.ID)
		}
		seenIdeas[idea.ID] = struct{}{}
	}
	seenPosts := make(map[string]struct{}, len(posts))
	for _, post := range posts {
		if _, dup := seenPosts[post.ID]; dup || s.has(CollectionPosts, post.ID) {
			return fmt.Errorf("%w: %s %q", entity.ErrDuplicateID, CollectionPosts, post.ID)
		}
		seenPosts[post.ID] = struct{}{}
	}

	for _, idea := range ideas {
		_ = s.claim(CollectionIdeas, idea.ID)
		s.ideas = append(s.ideas, idea.Clone())
	}
	for _, post := range posts {
		_ = s.claim(CollectionPosts, post.ID)
		s.posts = append(s.posts, post.Clone())
	}

	return nil
}

// Accounts returns a snapshot of all accounts
func (s *Store) Accounts() []entity.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Account returns a single account by id
func (s *Store) Account(id string) (entity.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, acc := range s.accounts {
		if acc.ID == id {
			return acc, true
		}
	}
	return entity.Account{}, false
}

// CategoryTemplates returns a snapshot of all category templates
func (s *Store) CategoryTemplates() []entity.CategoryTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.CategoryTemplate, len(s.templates))
	for i, t := range s.templates {
		out[i] = t.Clone()
	}
	return out
}

// Ideas returns a snapshot of all ideas
func (s *Store) Ideas() []entity.PostIdea {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.PostIdea, len(s.ideas))
	for i, idea := range s.ideas {
		out[i] = idea.Clone()
	}
	return out
}

// Idea returns a single idea by id
func (s *Store) Idea(id string) (entity.PostIdea, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, idea := range s.ideas {
		if idea.ID == id {
			return idea.Clone(), true
		}
	}
	return entity.PostIdea{}, false
}

// Posts returns a snapshot of all scheduled posts
func (s *Store) Posts() []entity.ScheduledPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.ScheduledPost, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Clone()
	}
	return out
}

// Insights returns a snapshot of all engagement insights
func (s *Store) Insights() []entity.EngagementInsight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.EngagementInsight, len(s.insights))
	copy(out, s.insights)
	return out
}
