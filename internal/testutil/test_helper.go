package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/plasmadinah/cms-backend/internal/models"
	"gorm.io/gorm"
)

// In-memory repository doubles used across service and websocket tests. All of
// them are mutex-guarded so concurrency tests exercise real interleavings.

type MockArticleRepo struct {
	mu       sync.Mutex
	nextID   uint
	Articles map[uint]*models.Article
	// Err, when set, makes every call fail with it.
	Err error
}

func NewMockArticleRepo() *MockArticleRepo {
	return &MockArticleRepo{Articles: make(map[uint]*models.Article)}
}

func (m *MockArticleRepo) Create(article *models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	article.ID = m.nextID
	if article.Views == 0 {
		article.Views = 30000
	}
	if article.Author == "" {
		article.Author = "Admin"
	}
	article.CreatedAt = time.Now()
	cp := *article
	m.Articles[article.ID] = &cp
	return nil
}

func (m *MockArticleRepo) FindByID(id uint) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	a, ok := m.Articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *MockArticleRepo) FindPage(offset, limit int) ([]models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	all := m.sortedLocked()
	if offset >= len(all) {
		return []models.Article{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *MockArticleRepo) FindRelated(excludeID uint, limit int) ([]models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Article, 0, limit)
	for _, a := range m.sortedLocked() {
		if a.ID == excludeID {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MockArticleRepo) CountAll() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.Articles)), nil
}

func (m *MockArticleRepo) Exists(id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	_, ok := m.Articles[id]
	return ok, nil
}

func (m *MockArticleRepo) Update(article *models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *article
	m.Articles[article.ID] = &cp
	return nil
}

func (m *MockArticleRepo) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Articles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepo) IncrementViews(id uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	a, ok := m.Articles[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	a.Views++
	return a.Views, nil
}

func (m *MockArticleRepo) sortedLocked() []models.Article {
	out := make([]models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

type MockCommentRepo struct {
	mu       sync.Mutex
	nextID   uint
	Comments []models.Comment
	Err      error
}

func NewMockCommentRepo() *MockCommentRepo {
	return &MockCommentRepo{}
}

func (m *MockCommentRepo) Create(comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	comment.ID = m.nextID
	comment.CreatedAt = time.Now()
	m.Comments = append(m.Comments, *comment)
	return nil
}

func (m *MockCommentRepo) FindByArticle(articleID uint, limit int) ([]models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Comment, 0)
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MockCommentRepo) CountByArticle(articleID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n, nil
}

func (m *MockCommentRepo) Stored() []models.Comment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Comment, len(m.Comments))
	copy(out, m.Comments)
	return out
}

type MockHeroRepo struct {
	mu     sync.Mutex
	nextID uint
	Heroes map[uint]*models.Hero
	Err    error
}

func NewMockHeroRepo() *MockHeroRepo {
	return &MockHeroRepo{Heroes: make(map[uint]*models.Hero)}
}

func (m *MockHeroRepo) FindAllOrdered() ([]models.Hero, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Hero, 0, len(m.Heroes))
	for _, h := range m.Heroes {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *MockHeroRepo) FindByID(id uint) (*models.Hero, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	h, ok := m.Heroes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *MockHeroRepo) Update(hero *models.Hero) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Heroes[hero.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *hero
	m.Heroes[hero.ID] = &cp
	return nil
}

func (m *MockHeroRepo) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.Heroes)), nil
}

func (m *MockHeroRepo) CreateBatch(heroes []models.Hero) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for i := range heroes {
		m.nextID++
		heroes[i].ID = m.nextID
		cp := heroes[i]
		m.Heroes[cp.ID] = &cp
	}
	return nil
}

type MockServiceRepo struct {
	mu       sync.Mutex
	nextID   uint
	Services map[uint]*models.Service
	Err      error
}

func NewMockServiceRepo() *MockServiceRepo {
	return &MockServiceRepo{Services: make(map[uint]*models.Service)}
}

func (m *MockServiceRepo) FindAll() ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Service, 0, len(m.Services))
	for _, s := range m.Services {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockServiceRepo) FindByID(id uint) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	s, ok := m.Services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *MockServiceRepo) Update(service *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Services[service.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *service
	m.Services[service.ID] = &cp
	return nil
}

func (m *MockServiceRepo) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.Services)), nil
}

func (m *MockServiceRepo) CreateBatch(services []models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for i := range services {
		m.nextID++
		services[i].ID = m.nextID
		cp := services[i]
		m.Services[cp.ID] = &cp
	}
	return nil
}

type MockMessageRepo struct {
	mu       sync.Mutex
	nextID   uint
	Messages map[uint]*models.Message
	Err      error
}

func NewMockMessageRepo() *MockMessageRepo {
	return &MockMessageRepo{Messages: make(map[uint]*models.Message)}
}

func (m *MockMessageRepo) Create(message *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	message.ID = m.nextID
	message.CreatedAt = time.Now()
	cp := *message
	m.Messages[cp.ID] = &cp
	return nil
}

func (m *MockMessageRepo) FindAll() ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Message, 0, len(m.Messages))
	for _, msg := range m.Messages {
		out = append(out, *msg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MockMessageRepo) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Messages[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.Messages, id)
	return nil
}

type MockUserRepo struct {
	mu     sync.Mutex
	nextID uint
	Users  map[uint]*models.User
	Err    error
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{Users: make(map[uint]*models.User)}
}

func (m *MockUserRepo) Create(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	user.ID = m.nextID
	if user.Role == "" {
		user.Role = "admin"
	}
	cp := *user
	m.Users[cp.ID] = &cp
	return nil
}

func (m *MockUserRepo) FindByUsername(username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepo) FindByID(id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}
