package filters

import "sync"

// CategoryAll desactiva el filtro por categoría.
const CategoryAll = "All"

// Categories son los chips de la pantalla de productos.
var Categories = []string{CategoryAll, "Ropa", "Accesorios", "Zapatos", "Electrónica"}

// State es la selección actual del usuario. No se persiste.
type State struct {
	SelectedCategory string `json:"selected_category"`
	SearchQuery      string `json:"search_query"`
	Notifications    bool   `json:"notifications"`
}

// Store guarda el estado de filtros del proceso. Se crea una vez y se
// pasa por referencia a quien lo use.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]func(State)
	next      int
}

func NewStore() *Store {
	return &Store{
		state: State{
			SelectedCategory: CategoryAll,
			Notifications:    true,
		},
		listeners: make(map[int]func(State)),
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetSelectedCategory reemplaza la categoría. No se valida contra
// Categories: una desconocida simplemente no encuentra productos.
func (s *Store) SetSelectedCategory(category string) State {
	return s.update(func(st *State) { st.SelectedCategory = category })
}

func (s *Store) SetSearchQuery(text string) State {
	return s.update(func(st *State) { st.SearchQuery = text })
}

func (s *Store) ToggleNotifications() State {
	return s.update(func(st *State) { st.Notifications = !st.Notifications })
}

// Reset vuelve a los valores iniciales.
func (s *Store) Reset() State {
	return s.update(func(st *State) {
		*st = State{SelectedCategory: CategoryAll, Notifications: true}
	})
}

// Subscribe registra fn para cada cambio de estado. Devuelve la función
// para darse de baja.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) update(mutate func(*State)) State {
	s.mu.Lock()
	mutate(&s.state)
	st := s.state
	fns := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
	return st
}
