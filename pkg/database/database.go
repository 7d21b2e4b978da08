package database

import (
	"fmt"
	"log"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate runs AutoMigrate for the full schema and seeds the static
// badge rules. Shared with the test setup, which runs it against sqlite.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.InstructorProfile{},
		&model.LearnerProfile{},
		&model.Course{},
		&model.Lesson{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizReward{},
		&model.Enrollment{},
		&model.LessonProgress{},
		&model.Review{},
		&model.CourseInvitation{},
		&model.BadgeRule{},
	)
	if err != nil {
		return err
	}

	seedBadgeRules(db)
	return nil
}

func seedBadgeRules(db *gorm.DB) {
	var count int64
	db.Model(&model.BadgeRule{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.BadgeRule{
		{Code: "first_steps", Label: "First Steps", Description: "Complete your first lesson", Kind: model.BadgeLessonsCompleted, Threshold: 1, Enabled: true},
		{Code: "dedicated", Label: "Dedicated", Description: "Complete 25 lessons", Kind: model.BadgeLessonsCompleted, Threshold: 25, Enabled: true},
		{Code: "graduate", Label: "Graduate", Description: "Complete your first course", Kind: model.BadgeCoursesCompleted, Threshold: 1, Enabled: true},
		{Code: "scholar", Label: "Scholar", Description: "Complete 5 courses", Kind: model.BadgeCoursesCompleted, Threshold: 5, Enabled: true},
		{Code: "critic", Label: "Critic", Description: "Write your first review", Kind: model.BadgeReviewsWritten, Threshold: 1, Enabled: true},
	}
	for _, rule := range defaults {
		db.Create(&rule)
	}
}
