// Package storage persiste documentos JSON planos, uno por archivo.
package storage

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Store guarda un documento completo en un único archivo JSON. Cada
// guardado reescribe el archivo entero: el último escritor gana a nivel
// archivo, pero Update serializa los ciclos leer-modificar-guardar de un
// mismo documento detrás de un mutex para no perder escrituras entre
// pedidos que se superponen.
type Store[T any] struct {
	path     string
	defaults func() T
	mu       sync.Mutex
	log      zerolog.Logger
}

// NewStore crea un store respaldado por el archivo dado. defaults se usa
// ante archivo ausente o ilegible.
func NewStore[T any](path string, defaults func() T, log zerolog.Logger) *Store[T] {
	return &Store[T]{path: path, defaults: defaults, log: log}
}

// Init escribe el documento por defecto si el archivo todavía no existe.
func (s *Store[T]) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	return s.write(s.defaults())
}

// Load deserializa el documento completo. Ante archivo ausente, ilegible
// o corrupto devuelve el documento por defecto; la anomalía se registra
// pero nunca se propaga al llamador.
func (s *Store[T]) Load() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Save serializa el documento en memoria y sobreescribe el archivo entero.
func (s *Store[T]) Save(doc T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Update ejecuta un ciclo leer-modificar-guardar bajo el mutex del store.
// Si fn devuelve error el archivo queda intacto y el error se propaga.
// Devuelve el documento resultante.
func (s *Store[T]) Update(fn func(doc *T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.read()
	if err := fn(&doc); err != nil {
		return doc, err
	}
	return doc, s.write(doc)
}

func (s *Store[T]) read() T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("file", s.path).
				Msg("no se pudo leer el documento, se usan valores por defecto")
		}
		return s.defaults()
	}
	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn().Err(err).Str("file", s.path).
			Msg("documento corrupto, se usan valores por defecto")
		return s.defaults()
	}
	return doc
}

func (s *Store[T]) write(doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
