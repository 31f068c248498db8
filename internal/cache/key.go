package cache

import "strings"

// Key identifica una lectura cacheada: recurso + alcance + parámetros.
type Key struct {
	Resource string
	Scope    string
	Params   []string
}

const (
	ScopeList   = "list"
	ScopeDetail = "detail"
)

func ListKey(resource string, params ...string) Key {
	return Key{Resource: resource, Scope: ScopeList, Params: params}
}

func DetailKey(resource, id string) Key {
	return Key{Resource: resource, Scope: ScopeDetail, Params: []string{id}}
}

// String es estable: la misma clave siempre produce el mismo texto.
func (k Key) String() string {
	parts := append([]string{k.Resource, k.Scope}, k.Params...)
	return strings.Join(parts, ":")
}
