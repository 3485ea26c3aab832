package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
	"github.com/google/uuid"
)

// In-memory implementations of the storage ports. They mimic the real
// storages: entity copies in and out, timestamps assigned on create/save,
// duplicates and absence reported with the domain errors. The clock is a
// counter so creation order is always strict.

type mockClock struct {
	base time.Time
	seq  int
}

func newMockClock() *mockClock {
	return &mockClock{base: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *mockClock) next() time.Time {
	c.seq++
	return c.base.Add(time.Duration(c.seq) * time.Second)
}

type mockUserStorage struct {
	users   map[uuid.UUID]domain.User
	clock   *mockClock
	saveErr error
}

func newMockUserStorage(clock *mockClock) *mockUserStorage {
	return &mockUserStorage{users: make(map[uuid.UUID]domain.User), clock: clock}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := m.clock.next()
	user.CreatedAt = now
	user.ModifiedAt = now
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserStorage) SaveUser(ctx context.Context, user *domain.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	user.ModifiedAt = m.clock.next()
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

type mockPostStorage struct {
	posts     map[uuid.UUID]domain.Post
	favorites map[uuid.UUID]map[uuid.UUID]bool // postID -> set of userIDs
	users     *mockUserStorage
	clock     *mockClock
}

func newMockPostStorage(users *mockUserStorage, clock *mockClock) *mockPostStorage {
	return &mockPostStorage{
		posts:     make(map[uuid.UUID]domain.Post),
		favorites: make(map[uuid.UUID]map[uuid.UUID]bool),
		users:     users,
		clock:     clock,
	}
}

func (m *mockPostStorage) CreatePost(ctx context.Context, post *domain.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := m.clock.next()
	post.CreatedAt = now
	post.ModifiedAt = now
	if post.Tags == nil {
		post.Tags = []string{}
	}
	m.posts[post.ID] = *post
	return nil
}

func (m *mockPostStorage) SavePost(ctx context.Context, post *domain.Post) error {
	if _, ok := m.posts[post.ID]; !ok {
		return domain.ErrNotFound
	}
	post.ModifiedAt = m.clock.next()
	m.posts[post.ID] = *post
	return nil
}

func (m *mockPostStorage) DeletePost(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.posts, id)
	delete(m.favorites, id)
	return nil
}

func (m *mockPostStorage) GetPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if p, ok := m.posts[id]; ok {
		copied := p
		copied.Tags = append([]string{}, p.Tags...)
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockPostStorage) feedItem(p domain.Post, requesterID uuid.UUID) domain.PostFeedItem {
	item := domain.PostFeedItem{Post: p}
	item.Tags = append([]string{}, p.Tags...)
	if author, ok := m.users.users[p.OwnerID]; ok {
		item.AuthorName = author.Name
		item.AuthorUsername = author.Username
		item.AuthorBio = author.Bio
		item.AuthorAvatarURL = author.AvatarURL
	}
	item.FavoritesCount = len(m.favorites[p.ID])
	if requesterID != uuid.Nil {
		item.IsFavorited = m.favorites[p.ID][requesterID]
	}
	return item
}

func (m *mockPostStorage) sortedPosts() []domain.Post {
	posts := make([]domain.Post, 0, len(m.posts))
	for _, p := range m.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

func hasTag(p domain.Post, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (m *mockPostStorage) GetFeedItemByID(ctx context.Context, id, requesterID uuid.UUID) (*domain.PostFeedItem, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	item := m.feedItem(p, requesterID)
	return &item, nil
}

func (m *mockPostStorage) ListFeed(ctx context.Context, q ports.FeedQuery) ([]domain.PostFeedItem, int, error) {
	var matched []domain.Post
	for _, p := range m.sortedPosts() {
		if q.Tag != "" && !hasTag(p, q.Tag) {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	offset := (q.Page - 1) * q.PerPage
	items := []domain.PostFeedItem{}
	if offset < total {
		end := offset + q.PerPage
		if end > total {
			end = total
		}
		for _, p := range matched[offset:end] {
			items = append(items, m.feedItem(p, q.RequesterID))
		}
	}
	return items, total, nil
}

func (m *mockPostStorage) ListFeedByOwner(ctx context.Context, ownerID, requesterID uuid.UUID) ([]domain.PostFeedItem, error) {
	items := []domain.PostFeedItem{}
	for _, p := range m.sortedPosts() {
		if p.OwnerID == ownerID {
			items = append(items, m.feedItem(p, requesterID))
		}
	}
	return items, nil
}

func (m *mockPostStorage) ListFavoritesOf(ctx context.Context, userID, requesterID uuid.UUID) ([]domain.PostFeedItem, error) {
	items := []domain.PostFeedItem{}
	for _, p := range m.sortedPosts() {
		if m.favorites[p.ID][userID] {
			items = append(items, m.feedItem(p, requesterID))
		}
	}
	return items, nil
}

func (m *mockPostStorage) AddFavorite(ctx context.Context, userID, postID uuid.UUID) error {
	if m.favorites[postID] == nil {
		m.favorites[postID] = make(map[uuid.UUID]bool)
	}
	m.favorites[postID][userID] = true
	return nil
}

func (m *mockPostStorage) RemoveFavorite(ctx context.Context, userID, postID uuid.UUID) error {
	delete(m.favorites[postID], userID)
	return nil
}

func (m *mockPostStorage) ListTagCounts(ctx context.Context) ([]domain.TagCount, error) {
	counts := map[string]int{}
	for _, p := range m.posts {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	tags := make([]domain.TagCount, 0, len(counts))
	for t, c := range counts {
		tags = append(tags, domain.TagCount{Tag: t, Count: c})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	return tags, nil
}

type mockCommentStorage struct {
	comments map[uuid.UUID]domain.Comment
	users    *mockUserStorage
	clock    *mockClock
}

func newMockCommentStorage(users *mockUserStorage, clock *mockClock) *mockCommentStorage {
	return &mockCommentStorage{comments: make(map[uuid.UUID]domain.Comment), users: users, clock: clock}
}

func (m *mockCommentStorage) CreateComment(ctx context.Context, comment *domain.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	now := m.clock.next()
	comment.CreatedAt = now
	comment.ModifiedAt = now
	m.comments[comment.ID] = *comment
	return nil
}

func (m *mockCommentStorage) SaveComment(ctx context.Context, comment *domain.Comment) error {
	if _, ok := m.comments[comment.ID]; !ok {
		return domain.ErrNotFound
	}
	comment.ModifiedAt = m.clock.next()
	m.comments[comment.ID] = *comment
	return nil
}

func (m *mockCommentStorage) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.comments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *mockCommentStorage) GetCommentByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if c, ok := m.comments[id]; ok {
		copied := c
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockCommentStorage) ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]domain.CommentWithAuthor, error) {
	var rows []domain.CommentWithAuthor
	for _, c := range m.comments {
		if c.PostID != postID {
			continue
		}
		row := domain.CommentWithAuthor{Comment: c}
		if author, ok := m.users.users[c.AuthorID]; ok {
			row.AuthorName = author.Name
			row.AuthorUsername = author.Username
			row.AuthorAvatarURL = author.AvatarURL
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})
	return rows, nil
}

type mockFileStorage struct {
	uploads  []string
	deletes  []string
	uploaded map[string][]byte
}

func newMockFileStorage() *mockFileStorage {
	return &mockFileStorage{uploaded: make(map[string][]byte)}
}

func (m *mockFileStorage) UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.uploads = append(m.uploads, key)
	m.uploaded[key] = data
	return fmt.Sprintf("http://files.local/avatars-bucket/%s", key), nil
}

func (m *mockFileStorage) DeleteFile(ctx context.Context, key string) error {
	m.deletes = append(m.deletes, key)
	delete(m.uploaded, key)
	return nil
}

type mockCleanupPublisher struct {
	published []payloads.AvatarCleanupPayload
}

func (m *mockCleanupPublisher) PublishAvatarCleanup(ctx context.Context, payload payloads.AvatarCleanupPayload) error {
	m.published = append(m.published, payload)
	return nil
}
