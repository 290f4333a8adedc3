package app

import (
	"net/http"

	"github.com/metinatakli/ticket-service/internal/domain"
)

func (app *Application) GetRoomsHandler(w http.ResponseWriter, r *http.Request) {
	rooms, err := app.catalog.ListRooms(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := RoomListResponse{Rooms: make([]Room, len(rooms))}
	for i, room := range rooms {
		resp.Rooms[i] = toApiRoom(room)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	var input Room

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	room := domain.Room{Name: input.Name, Rows: input.Rows, Columns: input.Columns}

	err = app.catalog.CreateRoom(r.Context(), &room)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiRoom(room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateRoomHandler(w http.ResponseWriter, r *http.Request) {
	name, err := readPathParam(r, "name")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input UpdateRoomRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	room := domain.Room{Name: name, Rows: input.Rows, Columns: input.Columns}

	err = app.catalog.UpdateRoom(r.Context(), &room)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiRoom(room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteRoomHandler(w http.ResponseWriter, r *http.Request) {
	name, err := readPathParam(r, "name")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.catalog.DeleteRoom(r.Context(), name)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiRoom(room domain.Room) Room {
	return Room{
		Name:    room.Name,
		Rows:    room.Rows,
		Columns: room.Columns,
	}
}
