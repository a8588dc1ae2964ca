package mock

import (
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"travelshare/app/models"
	"travelshare/app/repositories"
)

// table keeps JSON copies of documents in insertion order, so callers never
// share memory with what is stored.
type table[T any] struct {
	docs  map[string][]byte
	order []string
	mutex sync.RWMutex
	// FailWith, when set, is returned by every operation.
	FailWith error
}

func newTable[T any]() *table[T] {
	return &table[T]{docs: make(map[string][]byte)}
}

func (t *table[T]) put(id string, v *T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, exists := t.docs[id]; !exists {
		t.order = append(t.order, id)
	}
	t.docs[id] = data
	return nil
}

func (t *table[T]) decode(data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (t *table[T]) create(id string, v *T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.FailWith != nil {
		return t.FailWith
	}
	return t.put(id, v)
}

func (t *table[T]) get(id string) (*T, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	if t.FailWith != nil {
		return nil, t.FailWith
	}
	data, exists := t.docs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return t.decode(data)
}

func (t *table[T]) list(keep func(*T) bool) ([]*T, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	if t.FailWith != nil {
		return nil, t.FailWith
	}
	result := make([]*T, 0)
	for _, id := range t.order {
		v, err := t.decode(t.docs[id])
		if err != nil {
			return nil, err
		}
		if keep == nil || keep(v) {
			result = append(result, v)
		}
	}
	return result, nil
}

func (t *table[T]) update(id string, v *T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.FailWith != nil {
		return t.FailWith
	}
	if _, exists := t.docs[id]; !exists {
		return repositories.ErrNotFound
	}
	return t.put(id, v)
}

func (t *table[T]) remove(id string) (*T, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.FailWith != nil {
		return nil, t.FailWith
	}
	data, exists := t.docs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	delete(t.docs, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return t.decode(data)
}

func (t *table[T]) clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.docs = make(map[string][]byte)
	t.order = nil
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

type PublicationRepository struct {
	*table[models.Publication]
}

type CommentRepository struct {
	*table[models.Comment]
}

type ReactionRepository struct {
	*table[models.Reaction]
}

var (
	_ repositories.PublicationRepository = (*PublicationRepository)(nil)
	_ repositories.CommentRepository     = (*CommentRepository)(nil)
	_ repositories.ReactionRepository    = (*ReactionRepository)(nil)
)

func NewPublicationRepository() *PublicationRepository {
	return &PublicationRepository{table: newTable[models.Publication]()}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{table: newTable[models.Comment]()}
}

func NewReactionRepository() *ReactionRepository {
	return &ReactionRepository{table: newTable[models.Reaction]()}
}

// PublicationRepository implementation
func (m *PublicationRepository) Clear() { m.clear() }

func (m *PublicationRepository) Create(publication *models.Publication) error {
	publication.ID = newID()
	publication.BeforeCreate()
	return m.create(publication.ID, publication)
}

func (m *PublicationRepository) GetByID(id string) (*models.Publication, error) {
	return m.get(id)
}

func (m *PublicationRepository) List() ([]*models.Publication, error) {
	return m.list(nil)
}

func (m *PublicationRepository) ListByUser(user string) ([]*models.Publication, error) {
	return m.list(func(p *models.Publication) bool { return p.User == user })
}

func (m *PublicationRepository) Update(publication *models.Publication) error {
	publication.Touch()
	return m.update(publication.ID, publication)
}

func (m *PublicationRepository) Delete(id string) (*models.Publication, error) {
	return m.remove(id)
}

// CommentRepository implementation
func (m *CommentRepository) Clear() { m.clear() }

func (m *CommentRepository) Create(comment *models.Comment) error {
	comment.ID = newID()
	comment.BeforeCreate()
	return m.create(comment.ID, comment)
}

func (m *CommentRepository) GetByID(id string) (*models.Comment, error) {
	return m.get(id)
}

func (m *CommentRepository) List() ([]*models.Comment, error) {
	return m.list(nil)
}

func (m *CommentRepository) ListByUser(user string) ([]*models.Comment, error) {
	return m.list(func(c *models.Comment) bool { return c.User == user })
}

func (m *CommentRepository) ListByPublication(publicationID string) ([]*models.Comment, error) {
	return m.list(func(c *models.Comment) bool { return c.Publication == publicationID })
}

func (m *CommentRepository) Update(comment *models.Comment) error {
	comment.Touch()
	return m.update(comment.ID, comment)
}

func (m *CommentRepository) Delete(id string) (*models.Comment, error) {
	return m.remove(id)
}

// ReactionRepository implementation
func (m *ReactionRepository) Clear() { m.clear() }

func (m *ReactionRepository) Create(reaction *models.Reaction) error {
	reaction.ID = newID()
	reaction.BeforeCreate()
	return m.create(reaction.ID, reaction)
}

func (m *ReactionRepository) GetByID(id string) (*models.Reaction, error) {
	return m.get(id)
}

func (m *ReactionRepository) List() ([]*models.Reaction, error) {
	return m.list(nil)
}

func (m *ReactionRepository) ListByPublication(publicationID string) ([]*models.Reaction, error) {
	return m.list(func(r *models.Reaction) bool { return r.Publication == publicationID })
}

func (m *ReactionRepository) ListByComment(commentID string) ([]*models.Reaction, error) {
	return m.list(func(r *models.Reaction) bool { return r.Comment == commentID })
}

func (m *ReactionRepository) ListUnseenByUser(user string) ([]*models.Reaction, error) {
	return m.list(func(r *models.Reaction) bool { return r.User == user && !r.Seen })
}

func (m *ReactionRepository) ListByUserAndTarget(user string, kind models.TargetKind, targetID string) ([]*models.Reaction, error) {
	return m.list(func(r *models.Reaction) bool {
		if r.User != user {
			return false
		}
		k, id := r.Target()
		return k == kind && id == targetID
	})
}

func (m *ReactionRepository) Update(reaction *models.Reaction) error {
	reaction.Touch()
	return m.update(reaction.ID, reaction)
}

func (m *ReactionRepository) Delete(id string) (*models.Reaction, error) {
	return m.remove(id)
}
