package models

// Tipos de evento que acepta el rastreador.
const (
	EventVisit   = "visit"
	EventQuote   = "quote"
	EventContact = "contact"
	EventSocial  = "social"
)

// Límites del formulario de contacto.
const (
	MaxMessageLength = 300
	DailyEmailLimit  = 50
)

// DailyStats es el corte diario de contadores dentro del historial.
type DailyStats struct {
	Visits          int            `json:"visits"`
	Quotes          int            `json:"quotes"`
	ContactAttempts int            `json:"contact_attempts"`
	SocialClicks    int            `json:"social_clicks"`
	Products        map[string]int `json:"products"`
}

// EmailUsage es el balde diario del límite de correos.
type EmailUsage struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Stats es el documento único de estadísticas del sitio. Se persiste
// entero en stats.json; las ventas viven adentro del mismo documento.
type Stats struct {
	Visits          int                    `json:"visits"`
	Quotes          int                    `json:"quotes"`
	ContactAttempts int                    `json:"contact_attempts"`
	SocialClicks    int                    `json:"social_clicks"`
	Products        map[string]int         `json:"products"`
	History         map[string]*DailyStats `json:"history,omitempty"`
	Sales           []Sale                 `json:"sales,omitempty"`
	EmailUsage      *EmailUsage            `json:"email_usage,omitempty"`
}

// TrackRequest es el cuerpo de POST /api/track.
type TrackRequest struct {
	Type        string `json:"type"`
	ProductName string `json:"productName"`
}

// DefaultStats devuelve el documento inicial con contadores en cero.
func DefaultStats() Stats {
	return Stats{Products: map[string]int{}}
}

// Daily devuelve el balde del día indicado, creándolo en cero si no existe.
func (s *Stats) Daily(date string) *DailyStats {
	if s.History == nil {
		s.History = map[string]*DailyStats{}
	}
	daily := s.History[date]
	if daily == nil {
		daily = &DailyStats{Products: map[string]int{}}
		s.History[date] = daily
	}
	return daily
}

// Track aplica un evento sobre los contadores globales y el balde del día.
// Un tipo desconocido no modifica nada; el llamador persiste igual.
func (s *Stats) Track(eventType, productName, date string) {
	daily := s.Daily(date)

	switch eventType {
	case EventVisit:
		s.Visits++
		daily.Visits++
	case EventQuote:
		s.Quotes++
		daily.Quotes++
		if productName != "" {
			if s.Products == nil {
				s.Products = map[string]int{}
			}
			s.Products[productName]++
			if daily.Products == nil {
				daily.Products = map[string]int{}
			}
			daily.Products[productName]++
		}
	case EventContact:
		s.ContactAttempts++
		daily.ContactAttempts++
	case EventSocial:
		s.SocialClicks++
		daily.SocialClicks++
	}
}

// RefreshEmailUsage devuelve el balde del límite diario de correos,
// reiniciándolo en cero si la fecha guardada no es la de hoy.
func (s *Stats) RefreshEmailUsage(date string) *EmailUsage {
	if s.EmailUsage == nil || s.EmailUsage.Date != date {
		s.EmailUsage = &EmailUsage{Date: date}
	}
	return s.EmailUsage
}

// RegisterContact suma un intento de contacto confirmado, global y diario.
func (s *Stats) RegisterContact(date string) {
	s.ContactAttempts++
	s.Daily(date).ContactAttempts++
}
