package services

// Services defined in this package:
// - AuthService: Handles signup, login and token identity
// - OpportunityService: Handles listing, search and lifecycle of opportunities
// - ApplicationService: Handles application submission and review decisions
// - ProfileService: Handles student and teacher profile reads and updates
// - StatService: Handles the portal's success stats
// - ContactService: Handles the public contact form
