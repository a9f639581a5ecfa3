package model

// Config is the top-level structure of config.yaml.
type Config struct {
	Token      string          `mapstructure:"TOKEN"`
	Guilds     []string        `mapstructure:"guilds"`
	Auth       Auth            `mapstructure:"auth"`
	Emojis     Emojis          `mapstructure:"emojis"`
	Colors     Colors          `mapstructure:"colors"`
	Channels   Channels        `mapstructure:"channels"`
	Moderation Moderation      `mapstructure:"moderation"`
	Schedule   string          `mapstructure:"schedule"`
	Timezone   string          `mapstructure:"timezone"`
	Database   string          `mapstructure:"database"`
	PushRoot   string          `mapstructure:"push_root"`
	Packs      map[string]Pack `mapstructure:"packs"`
}

// Auth holds the capability configuration for tray and admin actions.
type Auth struct {
	Developers         []string `mapstructure:"developers"`
	AdminRoles         []string `mapstructure:"admin_roles"`
	CouncilRoleKeyword string   `mapstructure:"council_role_keyword"`
}

// Emojis maps the custom emoji IDs the bot reacts with.
type Emojis struct {
	Upvote    string `mapstructure:"upvote"`
	Downvote  string `mapstructure:"downvote"`
	SeeMore   string `mapstructure:"see_more"`
	SeeLess   string `mapstructure:"see_less"`
	Delete    string `mapstructure:"delete"`
	Instapass string `mapstructure:"instapass"`
	Invalid   string `mapstructure:"invalid"`
	Pending   string `mapstructure:"pending"`
}

// Colors holds the embed accent colors per lifecycle stage.
type Colors struct {
	Council int `mapstructure:"council"`
	Green   int `mapstructure:"green"`
	Red     int `mapstructure:"red"`
	Yellow  int `mapstructure:"yellow"`
	Blue    int `mapstructure:"blue"`
}

// Channels holds channels not owned by any pack.
type Channels struct {
	LinkDetection string `mapstructure:"link_detection"`
}

// Moderation holds the invite/scam detection link lists.
type Moderation struct {
	Advertising []string `mapstructure:"advertising"`
	Scams       []string `mapstructure:"scams"`
	Whitelist   []string `mapstructure:"whitelist"`
}

// Pack groups one submission pipeline: its channels, voting delays and the
// repositories approved textures are written to, keyed by edition.
type Pack struct {
	Resolution     int               `mapstructure:"resolution"`
	Channels       PackChannels      `mapstructure:"channels"`
	TimeToCouncil  int               `mapstructure:"time_to_council"`
	TimeToResults  int               `mapstructure:"time_to_results"`
	CouncilEnabled bool              `mapstructure:"council_enabled"`
	RepoName       map[string]string `mapstructure:"repo_name"`
}

// PackChannels are the three pipeline channels of a pack.
type PackChannels struct {
	Submit  string `mapstructure:"submit"`
	Council string `mapstructure:"council"`
	Results string `mapstructure:"results"`
}

// Stage identifies which pipeline channel a message lives in.
type Stage int

const (
	StageSubmit Stage = iota
	StageCouncil
	StageResults
)

// PackStage is one entry of the channel reverse index.
type PackStage struct {
	PackKey string
	Stage   Stage
}
