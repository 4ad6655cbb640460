package models

// Item is an owned entity (a book) as seen by the user aggregation.
type Item struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// UserWithItems is a user together with the items linked to them, built at
// query time from the users/user_books/books join. Items is never nil.
type UserWithItems struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Items    []*Item `json:"items"`
}
