package routes

import (
	"sufipulse-api/controllers"
	"sufipulse-api/middleware"
	"sufipulse-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			auth := public.Group("/auth")
			{
				auth.POST("/signup", controllers.Signup)
				auth.POST("/verify-otp", controllers.VerifyOTP)
				auth.POST("/login", controllers.Login)
				auth.POST("/resend-otp", controllers.ResendOTP)
				auth.POST("/forgot-password", controllers.ForgotPassword)
				auth.POST("/reset-password", controllers.ResetPassword)
				auth.POST("/refresh", controllers.RefreshToken)
			}

			// Public catalog
			public.GET("/public/postedkalams", controllers.GetPostedKalams)
			public.GET("/public/vocalists", controllers.GetPublicVocalists)
			public.GET("/public/writers", controllers.GetPublicWriters)
			public.GET("/public/blogs", controllers.GetApprovedBlogs)
			public.GET("/public/blogs/:id", controllers.GetPublicBlog)
			public.GET("/public/blogs/:id/comments", controllers.GetBlogComments)
			public.GET("/public/blogs/:id/engagement", controllers.GetBlogEngagement)
			public.POST("/public/partnership", controllers.CreatePartnershipProposal)
			public.POST("/public/contact", controllers.SubmitContactForm)

			// CMS content
			public.GET("/cms/page/:slug", controllers.GetCMSPageBySlug)
			public.GET("/cms/pages", controllers.GetCMSPages)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "SufiPulse API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Kalam details are visible to the writer, the assigned
			// vocalist and admins; the controller enforces ownership.
			protected.GET("/writer/kalams/:id", controllers.GetKalamDetails)

			// Writer kalam flow
			writer := protected.Group("/writer", middleware.RequireRole(models.RoleWriter))
			{
				writer.POST("/kalams", controllers.SubmitKalam)
				writer.GET("/kalams", controllers.GetMyKalams)
				writer.PUT("/kalams/:id", controllers.UpdateKalam)
			}

			// Blogger flow
			bloggers := protected.Group("/bloggers")
			{
				bloggers.POST("/submit-profile", middleware.RequireRole(models.RoleBlogger), controllers.SubmitBloggerProfile)
				bloggers.GET("/get/:id", controllers.GetBloggerProfile)
				bloggers.GET("/is-registered", controllers.CheckBloggerRegistration)
				bloggers.POST("/submit-blog", middleware.RequireRole(models.RoleBlogger), controllers.SubmitBlogPost)
				bloggers.GET("/my-blogs", middleware.RequireRole(models.RoleBlogger), controllers.GetMyBlogs)
				bloggers.GET("/blog/:id", controllers.GetBlogSubmission)
				bloggers.PUT("/blog/:id", middleware.RequireRole(models.RoleBlogger), controllers.UpdateBlogPost)
			}

			// Vocalist flow
			vocalists := protected.Group("/vocalists")
			{
				vocalists.POST("/submit-profile", middleware.RequireRole(models.RoleVocalist), controllers.SubmitVocalistProfile)
				vocalists.GET("/get/:id", controllers.GetVocalistProfile)
				vocalists.GET("/is-registered", controllers.CheckVocalistRegistration)
				vocalists.GET("/my-kalams", middleware.RequireRole(models.RoleVocalist), controllers.GetMyAssignedKalams)
			}

			// Blog engagement (writes require a known user)
			protected.POST("/public/blogs/:id/comment", controllers.AddBlogComment)
			protected.POST("/public/blogs/:id/like", controllers.ToggleBlogLike)
			protected.GET("/public/blogs/:id/like/status", controllers.GetBlogLikeStatus)
			protected.POST("/public/blogs/:id/view", controllers.RecordBlogView)
			protected.POST("/public/blogs/:id/share", controllers.RecordBlogShare)

			// Recording requests (vocalists)
			requests := protected.Group("/requests", middleware.RequireRole(models.RoleVocalist))
			{
				requests.GET("/approved-lyrics", controllers.GetApprovedLyrics)
				requests.POST("/studio-visit-request", controllers.CreateStudioRequest)
				requests.POST("/remote-recording-request", controllers.CreateRemoteRequest)
				requests.GET("/studio-visit-requests/vocalist", controllers.GetMyStudioRequests)
				requests.GET("/remote-recording-requests/vocalist", controllers.GetMyRemoteRequests)
				requests.GET("/check-request-exists/:kalam_id", controllers.CheckRequestExists)
			}

			// Uploads
			protected.POST("/upload/image", controllers.UploadImage)

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetMyNotifications)
				notifications.GET("/unread-count", controllers.GetUnreadNotificationCount)
				notifications.PATCH("/:id/read", controllers.MarkNotificationRead)
				notifications.PATCH("/read-all", controllers.MarkAllNotificationsRead)
			}

			// Admin routes
			admin := protected.Group("", middleware.RequireRole(models.RoleAdmin, models.RoleSubAdmin))
			{
				// Kalam review
				admin.GET("/admin/kalams", controllers.GetAllKalamSubmissions)
				admin.PUT("/writer/kalams/:id/submissions/:sid/status", controllers.UpdateKalamSubmissionStatus)
				admin.POST("/admin/kalams/:id/assign-vocalist", controllers.AssignVocalist)
				admin.POST("/admin/kalams/:id/youtube", controllers.PostYouTubeLink)

				// Blog review
				admin.GET("/admin/blogs", controllers.GetAllBlogSubmissions)
				admin.POST("/bloggers/blog/:id/approval", controllers.ApproveOrRejectBlog)

				// Users and profile review
				admin.GET("/admin/users", controllers.GetAllUsers)
				admin.GET("/admin/users/:id", controllers.GetUserByID)
				admin.PATCH("/admin/users/:id/status", controllers.UpdateUserProfileStatus)
				admin.GET("/admin/vocalists", controllers.GetAllVocalists)
				admin.GET("/admin/writers", controllers.GetAllWriters)
				admin.GET("/admin/blogger-profiles", controllers.GetAllBloggerProfiles)
				admin.GET("/admin/vocalist-profiles", controllers.GetAllVocalistProfiles)

				// Recording request review
				admin.GET("/requests/studio-visit-requests", controllers.GetAllStudioRequests)
				admin.PUT("/requests/studio-visit-requests/:id/status", controllers.UpdateStudioRequestStatus)
				admin.GET("/requests/remote-recording-requests", controllers.GetAllRemoteRequests)
				admin.PUT("/requests/remote-recording-requests/:id/status", controllers.UpdateRemoteRequestStatus)

				// Partnership proposals
				admin.GET("/admin/partnership-proposals", controllers.GetPartnershipProposals)

				// CMS management
				cms := admin.Group("/cms/admin")
				{
					cms.GET("/pages", controllers.GetAdminCMSPages)
					cms.POST("/pages", controllers.CreateCMSPage)
					cms.PUT("/pages/:id", controllers.UpdateCMSPage)
					cms.DELETE("/pages/:id", controllers.DeleteCMSPage)

					cms.GET("/pages/:id/stats", controllers.GetCMSStats)
					cms.POST("/pages/:id/stats", controllers.CreateCMSStat)
					cms.PUT("/stats/:id", controllers.UpdateCMSStat)
					cms.DELETE("/stats/:id", controllers.DeleteCMSStat)

					cms.GET("/pages/:id/values", controllers.GetCMSValues)
					cms.POST("/pages/:id/values", controllers.CreateCMSValue)
					cms.PUT("/values/:id", controllers.UpdateCMSValue)
					cms.DELETE("/values/:id", controllers.DeleteCMSValue)

					cms.GET("/pages/:id/team", controllers.GetCMSTeam)
					cms.POST("/pages/:id/team", controllers.CreateCMSTeamMember)
					cms.PUT("/team/:id", controllers.UpdateCMSTeamMember)
					cms.DELETE("/team/:id", controllers.DeleteCMSTeamMember)

					cms.GET("/pages/:id/timeline", controllers.GetCMSTimeline)
					cms.POST("/pages/:id/timeline", controllers.CreateCMSTimelineItem)
					cms.PUT("/timeline/:id", controllers.UpdateCMSTimelineItem)
					cms.DELETE("/timeline/:id", controllers.DeleteCMSTimelineItem)

					cms.GET("/pages/:id/testimonials", controllers.GetCMSTestimonials)
					cms.POST("/pages/:id/testimonials", controllers.CreateCMSTestimonial)
					cms.PUT("/testimonials/:id", controllers.UpdateCMSTestimonial)
					cms.DELETE("/testimonials/:id", controllers.DeleteCMSTestimonial)

					cms.GET("/pages/:id/hubs", controllers.GetCMSHubs)
					cms.POST("/pages/:id/hubs", controllers.CreateCMSHub)
					cms.PUT("/hubs/:id", controllers.UpdateCMSHub)
					cms.DELETE("/hubs/:id", controllers.DeleteCMSHub)
				}
			}
		}
	}
}
