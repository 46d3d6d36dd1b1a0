package model

// Portfolio is the static content rendered by the front-end.
type Portfolio struct {
	Personal     Personal      `yaml:"personal" json:"personal"`
	Experiences  []Experience  `yaml:"experiences" json:"experiences"`
	Projects     []Project     `yaml:"projects" json:"projects"`
	Skills       []SkillGroup  `yaml:"skills" json:"skills"`
	Achievements []Achievement `yaml:"achievements" json:"achievements"`
}

type Personal struct {
	Name      string   `yaml:"name" json:"name"`
	Title     string   `yaml:"title" json:"title"`
	Subtitle  string   `yaml:"subtitle" json:"subtitle"`
	About     []string `yaml:"about" json:"about"`
	Email     string   `yaml:"email" json:"email"`
	GitHub    string   `yaml:"github" json:"github"`
	LinkedIn  string   `yaml:"linkedin" json:"linkedin"`
	Twitter   string   `yaml:"twitter" json:"twitter"`
	ResumeURL string   `yaml:"resumeUrl" json:"resumeUrl"`
}

type Experience struct {
	Position    string `yaml:"position" json:"position"`
	Company     string `yaml:"company" json:"company"`
	Duration    string `yaml:"duration" json:"duration"`
	Location    string `yaml:"location" json:"location"`
	Description string `yaml:"description" json:"description"`
}

type Project struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	GitHub       string   `yaml:"github" json:"github"`
	Live         string   `yaml:"live" json:"live"`
}

type SkillGroup struct {
	Category string   `yaml:"category" json:"category"`
	Items    []string `yaml:"items" json:"items"`
}

type Achievement struct {
	Title string `yaml:"title" json:"title"`
	Link  string `yaml:"link" json:"link"`
}
