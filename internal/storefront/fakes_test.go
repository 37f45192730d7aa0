package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

type notification struct {
	ok      bool
	message string
	err     error
}

type recorder struct {
	mu     sync.Mutex
	events []notification
}

func (r *recorder) Success(_ context.Context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, notification{ok: true, message: message})
}

func (r *recorder) Failure(_ context.Context, message string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, notification{message: message, err: err})
}

func (r *recorder) last() notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return notification{}
	}
	return r.events[len(r.events)-1]
}

func products(from, to int, category string) []Product {
	var out []Product
	for id := from; id <= to; id++ {
		out = append(out, Product{
			ID:       id,
			Title:    fmt.Sprintf("Product %02d", id),
			Price:    decimal.NewFromInt(int64(id)),
			Category: category,
		})
	}
	return out
}

// catalogFake serves a fixed listing per category and can hold pages back
type catalogFake struct {
	mu         sync.Mutex
	listings   map[string][]Product
	gates      map[int]chan struct{}
	started    chan int
	countErr   error
	fetchErr   error
	fetches    []int
	inFlight   int
	maxFlight  int
	categories []string
}

func newCatalogFake(listings map[string][]Product) *catalogFake {
	return &catalogFake{
		listings: listings,
		gates:    make(map[int]chan struct{}),
		started:  make(chan int, 16),
	}
}

// hold makes FetchPage for page block until the returned func is called
func (c *catalogFake) hold(page int) func() {
	gate := make(chan struct{})
	c.mu.Lock()
	c.gates[page] = gate
	c.mu.Unlock()
	return func() { close(gate) }
}

func (c *catalogFake) FetchPage(ctx context.Context, category string, page, limit int) ([]Product, error) {
	c.mu.Lock()
	c.fetches = append(c.fetches, page)
	c.inFlight++
	if c.inFlight > c.maxFlight {
		c.maxFlight = c.inFlight
	}
	gate := c.gates[page]
	fetchErr := c.fetchErr
	all := c.listings[category]
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight--
		c.mu.Unlock()
	}()

	select {
	case c.started <- page:
	default:
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if fetchErr != nil {
		return nil, fetchErr
	}

	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return append([]Product(nil), all[start:end]...), nil
}

func (c *catalogFake) CountProducts(ctx context.Context, category string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.countErr != nil {
		return 0, c.countErr
	}
	return len(c.listings[category]), nil
}

func (c *catalogFake) Categories(ctx context.Context) ([]string, error) {
	if c.categories == nil {
		return nil, fmt.Errorf("%w: categories unavailable", ErrTransport)
	}
	return c.categories, nil
}

func (c *catalogFake) fetchCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fetches)
}

// storeFake is an in-memory cart and favorites boundary
type storeFake struct {
	mu        sync.Mutex
	nextID    uint
	lines     map[uint]CartLine
	favorites map[uint]FavoriteItem
	calls     int
	err       error
	echoQty   int
}

func newStoreFake() *storeFake {
	return &storeFake{
		lines:     make(map[uint]CartLine),
		favorites: make(map[uint]FavoriteItem),
	}
}

func (s *storeFake) begin() error {
	s.mu.Lock()
	s.calls++
	return s.err
}

func (s *storeFake) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *storeFake) ListCart(ctx context.Context, sess Session) ([]CartLine, error) {
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	var out []CartLine
	for id := uint(1); id <= s.nextID; id++ {
		if line, ok := s.lines[id]; ok && line.UserID == sess.UserID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (s *storeFake) AddCartLine(ctx context.Context, sess Session, line NewCartLine) (*CartLine, error) {
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.nextID++
	created := CartLine{
		ID:        s.nextID,
		UserID:    sess.UserID,
		ProductID: line.ProductID,
		Title:     line.Title,
		Price:     line.Price,
		Image:     line.Image,
		Quantity:  *line.Quantity,
	}
	s.lines[created.ID] = created
	return &created, nil
}

func (s *storeFake) UpdateCartLine(ctx context.Context, sess Session, lineID uint, quantity int) (*CartLine, error) {
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	line, ok := s.lines[lineID]
	if !ok {
		return nil, fmt.Errorf("%w: cart item %d", ErrNotFound, lineID)
	}
	line.Quantity = quantity
	s.lines[lineID] = line
	if s.echoQty != 0 {
		line.Quantity = s.echoQty
	}
	return &line, nil
}

func (s *storeFake) RemoveCartLine(ctx context.Context, sess Session, lineID uint) error {
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	if _, ok := s.lines[lineID]; !ok {
		return fmt.Errorf("%w: cart item %d", ErrNotFound, lineID)
	}
	delete(s.lines, lineID)
	return nil
}

func (s *storeFake) ListFavorites(ctx context.Context, sess Session) ([]FavoriteItem, error) {
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	var out []FavoriteItem
	for _, item := range s.favorites {
		if item.UserID == sess.UserID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *storeFake) AddFavorite(ctx context.Context, sess Session, item NewFavorite) (*FavoriteItem, error) {
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.nextID++
	created := FavoriteItem{
		ID:          s.nextID,
		UserID:      sess.UserID,
		ProductID:   item.ProductID,
		Title:       item.Title,
		Price:       item.Price,
		Image:       item.Image,
		Description: item.Description,
	}
	s.favorites[created.ID] = created
	return &created, nil
}

func (s *storeFake) RemoveFavorite(ctx context.Context, sess Session, favoriteID uint) error {
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	item, ok := s.favorites[favoriteID]
	if !ok || item.UserID != sess.UserID {
		return fmt.Errorf("%w: favorite item %d", ErrNotFound, favoriteID)
	}
	delete(s.favorites, favoriteID)
	return nil
}
