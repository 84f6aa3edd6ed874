package services

import (
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/config"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/db"
	activity2 "github.com/nirbhaypatil1311-max/Task-Management-System/internal/services/activity"
	task2 "github.com/nirbhaypatil1311-max/Task-Management-System/internal/services/task"
	user2 "github.com/nirbhaypatil1311-max/Task-Management-System/internal/services/user"
)

type Services struct {
	User     *user2.UserService
	Task     *task2.TaskService
	Activity *activity2.ActivityService
}

func NewServices(conf *config.Config) *Services {
	dbconn := db.NewConn(conf)

	return &Services{
		User:     user2.NewUserService(user2.NewUserRepo(dbconn)),
		Task:     task2.NewTaskService(task2.NewTaskRepo(dbconn)),
		Activity: activity2.NewActivityService(activity2.NewActivityRepo(dbconn)),
	}
}
