package model

import "time"

// ErrorResponse mirrors the {"detail": ...} error body the web client
// already consumes.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type UserCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
}

type CategoryCreateRequest struct {
	Name string `json:"name"`
}

type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type EventCreateRequest struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	Date        time.Time `json:"date"`
	CategoryID  *uint     `json:"category_id"`
}

type EventView struct {
	ID                uint          `json:"id"`
	Title             string        `json:"title"`
	Description       *string       `json:"description"`
	Location          *string       `json:"location"`
	Date              time.Time     `json:"date"`
	Status            EventStatus   `json:"status"`
	Category          *CategoryView `json:"category"`
	RegistrationCount int64         `json:"registration_count"`
}

// EventSummary is the event shape nested under registration views; unlike
// EventView it carries no registration count.
type EventSummary struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Location    *string       `json:"location"`
	Date        time.Time     `json:"date"`
	Status      EventStatus   `json:"status"`
	Category    *CategoryView `json:"category"`
}

type StatusUpdateRequest struct {
	Status EventStatus `json:"status"`
}

type StatusUpdateResponse struct {
	Message string      `json:"message"`
	Status  EventStatus `json:"status"`
}

type RegistrationCreatedResponse struct {
	Message        string `json:"message"`
	RegistrationID uint   `json:"registration_id"`
}

type RegistrationCheckResponse struct {
	IsRegistered bool `json:"is_registered"`
}

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserRegistrationView struct {
	RegistrationID uint         `json:"registration_id"`
	RegisteredAt   time.Time    `json:"registered_at"`
	Event          EventSummary `json:"event"`
}

type EventRegistrationView struct {
	RegistrationID uint        `json:"registration_id"`
	RegisteredAt   time.Time   `json:"registered_at"`
	User           UserSummary `json:"user"`
}

type CommentCreateRequest struct {
	Content string `json:"content"`
	UserID  uint   `json:"user_id"`
}

type CommentAuthor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CommentView struct {
	ID        uint          `json:"id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	User      CommentAuthor `json:"user"`
}

// RegistrationCSVRow is one line of the roster export download.
type RegistrationCSVRow struct {
	RegistrationID uint   `csv:"registration_id"`
	Name           string `csv:"name"`
	Email          string `csv:"email"`
	RegisteredAt   string `csv:"registered_at"`
}

func NewUserView(u User) UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}

func NewCategoryView(c Category) CategoryView {
	return CategoryView{ID: c.ID, Name: c.Name}
}

func newNestedCategoryView(c *Category) *CategoryView {
	if c == nil {
		return nil
	}
	v := NewCategoryView(*c)
	return &v
}

func NewEventView(e Event, registrations int64) EventView {
	return EventView{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		Location:          e.Location,
		Date:              e.Date,
		Status:            e.Status,
		Category:          newNestedCategoryView(e.Category),
		RegistrationCount: registrations,
	}
}

func NewEventSummary(e Event) EventSummary {
	return EventSummary{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Date:        e.Date,
		Status:      e.Status,
		Category:    newNestedCategoryView(e.Category),
	}
}
