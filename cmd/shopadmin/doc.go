// Command shopadmin runs the e-commerce admin API.
//
//	shopadmin serve             # start on APP_PORT (default 8080)
//	shopadmin serve --port 9000
//	shopadmin route:list        # print the route table
//
// Configuration is read from config/app.json, then .env, then the process
// environment. See config.Load.
package main
