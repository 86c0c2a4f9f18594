package tiktok

// apiResponse mirrors the tiktok-scraper7 RapidAPI feed/search payload.
// Code 0 means success; anything else carries an error message in Msg.
type apiResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Videos []video `json:"videos"`
	} `json:"data"`
}

type video struct {
	VideoID      string `json:"video_id"`
	AwemeID      string `json:"aweme_id"`
	Title        string `json:"title"`
	CreateTime   int64  `json:"create_time"`
	DiggCount    int64  `json:"digg_count"`
	CommentCount int64  `json:"comment_count"`
	ShareCount   int64  `json:"share_count"`
	PlayCount    int64  `json:"play_count"`
	Author       struct {
		UniqueID string `json:"unique_id"`
		Nickname string `json:"nickname"`
	} `json:"author"`
}

// id prefers the canonical video id and falls back to the aweme id; the
// API is not consistent about which one it fills.
func (v video) id() string {
	if v.VideoID != "" {
		return v.VideoID
	}
	return v.AwemeID
}
