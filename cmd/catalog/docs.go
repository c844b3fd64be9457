package main

// @title Price List Catalog API
// @version 1.0
// @description Product price list with search, filtering, sorting and live updates

// @host localhost:8081
// @BasePath /
