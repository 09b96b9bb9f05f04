package entity

type ArticleImage struct {
	V       int     `json:"v"`
	Src     string  `json:"src"`
	Height  int     `json:"height"`
	Width   int     `json:"width"`
	Alt     string  `json:"alt"`
	Credit  string  `json:"credit"`
	Preview *string `json:"preview"`
}

type Article struct {
	ID           int          `json:"id"`
	Slug         string       `json:"slug"`
	Author       string       `json:"author"`
	CategoryID   int          `json:"categoryId"`
	CategorySlug string       `json:"categorySlug"`
	Image        ArticleImage `json:"image"`
	Title        string       `json:"title"`
	TitleShort   *string      `json:"titleShort"`
	SubTitle     string       `json:"subTitle"`
	RoofTitle    string       `json:"roofTitle"`
	Time         int64        `json:"time"`
	Props        []string     `json:"props"`
}
