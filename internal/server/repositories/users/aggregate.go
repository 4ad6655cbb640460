package users

import (
	"database/sql"

	"github.com/dmitrijs2005/shelfkeeper/internal/server/models"
)

// userItemRow is one row of the users/user_books/books left join. The item
// columns are NULL when the user owns nothing.
type userItemRow struct {
	UserID   int64
	Username string
	Email    string
	ItemID   sql.NullInt64
	Title    sql.NullString
	Author   sql.NullString
}

// groupUserItems folds join rows into one UserWithItems per user id, keeping
// users in first-seen order and each user's items in row order.
func groupUserItems(rows []userItemRow) []*models.UserWithItems {
	byID := make(map[int64]*models.UserWithItems)
	result := make([]*models.UserWithItems, 0)

	for _, row := range rows {
		u, ok := byID[row.UserID]
		if !ok {
			u = &models.UserWithItems{
				ID:       row.UserID,
				Username: row.Username,
				Email:    row.Email,
				Items:    make([]*models.Item, 0),
			}
			byID[row.UserID] = u
			result = append(result, u)
		}

		if !row.ItemID.Valid {
			continue
		}
		u.Items = append(u.Items, &models.Item{
			ID:     row.ItemID.Int64,
			Title:  row.Title.String,
			Author: row.Author.String,
		})
	}

	return result
}
