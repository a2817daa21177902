package http_test

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"sync"
	"time"

	"mesto/internal/mesto/domain/entities"
)

var storeIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// memoryStore - хранилище в памяти с теми же гарантиями, что и Postgres:
// уникальная почта, идемпотентные лайки и удаление с учетом владельца.
type memoryStore struct {
	mu     sync.Mutex
	seq    int
	users  map[string]*entities.User
	emails map[string]string
	cards  map[string]*entities.Card
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:  make(map[string]*entities.User),
		emails: make(map[string]string),
		cards:  make(map[string]*entities.Card),
	}
}

func (s *memoryStore) nextID() string {
	s.seq++
	return fmt.Sprintf("%024x", s.seq)
}

type memoryUsers struct{ *memoryStore }

type memoryCards struct{ *memoryStore }

func (s memoryUsers) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[user.Email]; ok {
		return nil, entities.ErrEmailAlreadyExists
	}
	created := *user
	created.ID = s.nextID()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.users[created.ID] = &created
	s.emails[created.Email] = created.ID
	return created.Public(), nil
}

func (s memoryUsers) FindAll(context.Context) ([]*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*entities.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user.Public())
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s memoryUsers) FindByID(_ context.Context, id string) (*entities.User, error) {
	if !storeIDPattern.MatchString(id) {
		return nil, entities.ErrInvalidUserID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return user.Public(), nil
}

func (s memoryUsers) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, err := s.FindByEmailWithPassword(ctx, email)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (s memoryUsers) FindByEmailWithPassword(_ context.Context, email string) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emails[email]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	user := *s.users[id]
	return &user, nil
}

func (s memoryUsers) UpdateProfile(_ context.Context, id string, update entities.ProfileUpdate) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.About != nil {
		user.About = *update.About
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	user.UpdatedAt = time.Now()
	return user.Public(), nil
}

func (s memoryCards) Create(_ context.Context, card *entities.Card) (*entities.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[card.OwnerID]; !ok {
		return nil, entities.ErrInvalidCardData
	}
	created := *card
	created.ID = s.nextID()
	created.Likes = []string{}
	created.CreatedAt = time.Now()
	s.cards[created.ID] = &created
	return copyCard(&created), nil
}

func (s memoryCards) FindAll(context.Context) ([]*entities.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := make([]*entities.Card, 0, len(s.cards))
	for _, card := range s.cards {
		cards = append(cards, copyCard(card))
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID > cards[j].ID })
	return cards, nil
}

func (s memoryCards) FindByID(_ context.Context, id string) (*entities.Card, error) {
	if !storeIDPattern.MatchString(id) {
		return nil, entities.ErrInvalidCardID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[id]
	if !ok {
		return nil, entities.ErrCardNotFound
	}
	return copyCard(card), nil
}

func (s memoryCards) Delete(_ context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[id]
	if !ok || card.OwnerID != ownerID {
		return entities.ErrCardNotFound
	}
	delete(s.cards, id)
	return nil
}

func (s memoryCards) AddLike(_ context.Context, cardID, userID string) (*entities.Card, error) {
	return s.updateLikes(cardID, func(card *entities.Card) {
		if !slices.Contains(card.Likes, userID) {
			card.Likes = append(card.Likes, userID)
		}
	})
}

func (s memoryCards) RemoveLike(_ context.Context, cardID, userID string) (*entities.Card, error) {
	return s.updateLikes(cardID, func(card *entities.Card) {
		likes := card.Likes[:0]
		for _, id := range card.Likes {
			if id != userID {
				likes = append(likes, id)
			}
		}
		card.Likes = likes
	})
}

func (s memoryCards) updateLikes(cardID string, update func(card *entities.Card)) (*entities.Card, error) {
	if !storeIDPattern.MatchString(cardID) {
		return nil, entities.ErrInvalidCardID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[cardID]
	if !ok {
		return nil, entities.ErrCardNotFound
	}
	update(card)
	return copyCard(card), nil
}

func copyCard(card *entities.Card) *entities.Card {
	c := *card
	c.Likes = append([]string{}, card.Likes...)
	return &c
}
