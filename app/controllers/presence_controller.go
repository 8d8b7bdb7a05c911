package controllers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/danuarts/stylora-backend/app/queries"
	"github.com/danuarts/stylora-backend/pkg/database"
	"github.com/danuarts/stylora-backend/pkg/utils"
)

type locationUpdate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PresenceSocket keeps an authenticated stylist online for the duration of
// the connection. The first location message flips the stylist online and
// seeds live_location; every later message moves it. Any disconnect flips
// the stylist offline so stale positions never feed the
// online candidate pool.
func PresenceSocket(c *websocket.Conn) {
	token := c.Query("token")
	stylistID, role, err := utils.ExtractClaimsFromToken(token)
	if err != nil || role != RoleStylist {
		log.Printf("event=presence_rejected err=%v", err)
		_ = c.Close()
		return
	}

	stylistQueries := queries.StylistQueries{DB: database.DB}
	online := false

	log.Printf("event=presence_connected stylist=%s", stylistID)

	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			break
		}

		var update locationUpdate
		if err := json.Unmarshal(msg, &update); err != nil {
			// non-JSON frames are ignored
			continue
		}
		if update.Lat < -90 || update.Lat > 90 || update.Lng < -180 || update.Lng > 180 {
			continue
		}

		if !online {
			if err := stylistQueries.SetOnline(stylistID, update.Lat, update.Lng); err != nil {
				log.Printf("event=presence_online_error stylist=%s err=%v", stylistID, err)
				break
			}
			online = true
			log.Printf("event=presence_online stylist=%s", stylistID)
			continue
		}

		if err := stylistQueries.UpdateLiveLocation(stylistID, update.Lat, update.Lng); err != nil {
			log.Printf("event=presence_update_error stylist=%s err=%v", stylistID, err)
		}
	}

	if online {
		if err := stylistQueries.SetOffline(stylistID); err != nil {
			log.Printf("event=presence_offline_error stylist=%s err=%v", stylistID, err)
		}
	}
	log.Printf("event=presence_disconnected stylist=%s", stylistID)
	_ = c.Close()
}
