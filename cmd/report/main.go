// Command report prints the current room occupancy and capacity alerts to the
// terminal. It reads the same store as the server.
package main

import (
	"fmt"
	"log"
	"os"

	"exams-control/app/config"
	"exams-control/app/database"
	"exams-control/app/models"
	"exams-control/app/services"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := config.OpenDB(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	occupancy, err := database.GetRoomOccupancy(db)
	if err != nil {
		log.Fatal("Failed to fetch occupancy:", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Room", "Capacity", "Occupancy", "Rate"})
	for _, room := range occupancy {
		rate := 0.0
		if room.Capacity > 0 {
			rate = float64(room.CurrentOccupancy) / float64(room.Capacity) * 100
		}
		table.Append([]string{
			fmt.Sprintf("%d", room.ID),
			room.Name,
			fmt.Sprintf("%d", room.Capacity),
			fmt.Sprintf("%d", room.CurrentOccupancy),
			fmt.Sprintf("%.0f%%", rate),
		})
	}
	table.Render()

	alerts := services.CapacityAlerts(occupancy)
	if len(alerts) == 0 {
		color.Green("All rooms are under the %d%% capacity threshold", 90)
		return
	}
	for _, alert := range alerts {
		if alert.Type == models.NotificationError {
			color.Red("[%s] %s", alert.ID, alert.Message)
		} else {
			color.Yellow("[%s] %s", alert.ID, alert.Message)
		}
	}
}
