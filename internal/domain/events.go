package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventViewChanged          EventType = "ViewChanged"
	EventQueryChanged         EventType = "QueryChanged"
	EventSlideChanged         EventType = "SlideChanged"
	EventArticleOpened        EventType = "ArticleOpened"
	EventInstituteViewed      EventType = "InstituteViewed"
	EventNewsletterSubscribed EventType = "NewsletterSubscribed"
	EventError                EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ViewChangedEvent is emitted when the view switcher changes page
type ViewChangedEvent struct {
	From string
	To   string
}

func (e ViewChangedEvent) Type() EventType { return EventViewChanged }

// QueryChangedEvent is emitted when a section's search text or facets change
type QueryChangedEvent struct {
	Section string
	Text    string
	Facets  map[string]string
	Results int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// SlideChangedEvent is emitted when a carousel moves to another slide
type SlideChangedEvent struct {
	Section string
	Index   int
	Auto    bool // advanced by the timer rather than the user
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// ArticleOpenedEvent is emitted when a full article is opened in the reader
type ArticleOpenedEvent struct {
	ArticleID int
	Title     string
}

func (e ArticleOpenedEvent) Type() EventType { return EventArticleOpened }

// InstituteViewedEvent is emitted when the institute details dialog opens
type InstituteViewedEvent struct {
	InstituteID int
	ShortName   string
}

func (e InstituteViewedEvent) Type() EventType { return EventInstituteViewed }

// NewsletterSubscribedEvent is emitted when the footer form is submitted
type NewsletterSubscribedEvent struct {
	Email string
}

func (e NewsletterSubscribedEvent) Type() EventType { return EventNewsletterSubscribed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
