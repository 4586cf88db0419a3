package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- user repository fake ---

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user

	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmailOrUsername(_ context.Context, email, username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email || user.Username == username {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}

	return users, nil
}

// --- product repository fake ---

type fakeProductRepo struct {
	products  map[uuid.UUID]*entity.Product
	deleteErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product

	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *product

	return &copied, nil
}

func (r *fakeProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}

	return products, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.products[product.ID] = product

	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.products, id)

	return nil
}

// --- order repository fake ---

type fakeOrderRepo struct {
	orders    map[uuid.UUID]*entity.Order
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Lines {
		if order.Lines[i].ID == uuid.Nil {
			order.Lines[i].ID = uuid.New()
		}
		order.Lines[i].OrderID = order.ID
	}
	r.orders[order.ID] = order

	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return order, nil
}

func (r *fakeOrderRepo) ListAll(_ context.Context) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	order.Status = status

	return order, nil
}

// --- transaction manager fake ---

type fakeRepoFactory struct {
	userRepo    *fakeUserRepo
	productRepo *fakeProductRepo
	orderRepo   *fakeOrderRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository       { return f.userRepo }
func (f *fakeRepoFactory) ProductRepo() repository.ProductRepository { return f.productRepo }
func (f *fakeRepoFactory) OrderRepo() repository.OrderRepository     { return f.orderRepo }

type fakeTxManager struct {
	factory  *fakeRepoFactory
	executed int
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	m.executed++

	return fn(m.factory)
}

// --- domain service fakes ---

type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) Issue(userID uuid.UUID) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-" + userID.String(), nil
}

func (s *fakeTokenService) Verify(tokenString string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimPrefix(tokenString, "token-"))
	if err != nil {
		return uuid.Nil, errors.New("invalid token")
	}

	return id, nil
}

type fakeImageStore struct {
	uploads   int
	deleted   []string
	uploadErr error
	deleteErr error
}

func (s *fakeImageStore) Upload(_ context.Context, filename, _ string, content io.Reader) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}
	s.uploads++

	return "https://img.test/" + filename, nil
}

func (s *fakeImageStore) Delete(_ context.Context, url string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, url)

	return nil
}
