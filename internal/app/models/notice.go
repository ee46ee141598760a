package models

// Notice is an announcement published by an admin. The (topic, content, date)
// tuple guards against duplicate submissions.
type Notice struct {
	ID        int64  `json:"id" db:"id"`
	From      string `json:"from" db:"sender"`
	Topic     string `json:"topic" db:"topic"`
	Content   string `json:"content" db:"content"`
	Date      string `json:"date" db:"date"`
	NoticeFor string `json:"noticeFor" db:"notice_for"`
}
