package config

import "gorm.io/gorm"

// App bundles the infrastructure handles built once at process start
// and passed into the services and controllers.
type App struct {
	DB     *gorm.DB
	Redis  *CacheService
	Influx *InfluxClient
}

func InitializeApp() (*App, error) {
	NewLoggerService()

	db, err := NewDatabase()
	if err != nil {
		return nil, err
	}

	cache, err := NewCacheService()
	if err != nil {
		return nil, err
	}

	influx, err := NewInfluxDB()
	if err != nil {
		return nil, err
	}

	return &App{
		DB:     db,
		Redis:  cache,
		Influx: influx,
	}, nil
}
