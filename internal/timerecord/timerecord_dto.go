package timerecord

type CreateTimeRecordRequest struct {
	Type string `json:"type" binding:"required,oneof=MORNING_ENTRY MORNING_EXIT AFTERNOON_ENTRY AFTERNOON_EXIT"`
}

type TimeRecordResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"created_at"`
}
