package reddit

// apiResponse mirrors the reddit34 RapidAPI search payload. Posts come
// wrapped in the usual reddit kind/data envelope.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Posts []postWrapper `json:"posts"`
	} `json:"data"`
}

type postWrapper struct {
	Kind string `json:"kind"`
	Data post   `json:"data"`
}

type post struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Permalink   string  `json:"permalink"`
	CreatedUTC  float64 `json:"created_utc"`
	Ups         int64   `json:"ups"`
	Downs       int64   `json:"downs"`
	Score       int64   `json:"score"`
	NumComments int64   `json:"num_comments"`
}
