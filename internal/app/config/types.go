package config

type (
	DriverConfig struct {
		Logger Logger
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App      App
	Supabase Supabase
}

type App struct {
	Env             string
	Port            string
	Timezone        string
	MaxRequests     int
	ShutdownTimeout int
}

type Supabase struct {
	BaseUrl string `validate:"required,url"`
	APIKey  string `validate:"required"`
}
