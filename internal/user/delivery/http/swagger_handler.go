package http

// Register godoc
// @Summary Register a new user
// @Description Create a new account; the email must be unique
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string} true "User registration data"
// @Success 201 {object} object{success=bool,message=string,data=object{id=int,name=string,email=string,profile_image=string,created_at=string,updated_at=string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/auth/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary Login user
// @Description Authenticate and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{success=bool,message=string,data=object{token=string,user=object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/auth/login [post]
func (h *UserHandler) LoginDoc() {}

// GetProfile godoc
// @Summary Get the current user's profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{id=int,name=string,email=string,profile_image=string}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/profile [get]
func (h *UserHandler) GetProfileDoc() {}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Description Absent or empty fields are left unchanged
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,profile_image=string} true "Profile fields"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/profile [patch]
func (h *UserHandler) UpdateProfileDoc() {}
