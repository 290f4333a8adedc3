package integration_test

const (
	TestMovieTitle     = "Sátántangó"
	TestOtherMovie     = "Spirited Away"
	TestRoomName       = "Pedersoli"
	TestStartingTime   = "2021-03-15 08:00"
	TestUsername       = "sanyi"
	TestOtherUsername  = "lajos"
	TestBasePrice      = 1500
	TestRoomRows       = 10
	TestRoomColumns    = 10
	TestPremiereCharge = 300
)
